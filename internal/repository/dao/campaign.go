package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrQRCodeNotFound       = errors.New("qr code not valid for this campaign")
	ErrRaffleResultNotFound = errors.New("raffle result not found")
)

type Campaign struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Description      string
	TotalQRCodes     int       `gorm:"not null"`
	StartDate        time.Time `gorm:"not null"`
	EndDate          time.Time `gorm:"not null"`
	PrizeType        string    `gorm:"not null"` // "direct" or "raffle"
	PrizeDescription string
	PrizeImageURL    string
	Rules            string
	RulesURL         string
	ImageURL         string
	NumWinners       int `gorm:"not null;default:1"`
	RaffleDate       *time.Time
	RaffleExecuted   bool      `gorm:"not null;default:false"`
	IsActive         bool      `gorm:"not null;default:true"`
	QRCodes          []QRCode  `gorm:"foreignKey:CampaignID"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (Campaign) TableName() string {
	return "gimcana_campaigns"
}

type QRCode struct {
	ID                uint   `gorm:"primaryKey"`
	CampaignID        uint   `gorm:"not null;uniqueIndex:uix_qr_campaign_code"`
	Code              string `gorm:"not null;uniqueIndex:uix_qr_campaign_code"`
	Number            int    `gorm:"not null"`
	EstablishmentName string `gorm:"not null"`
	LocationHint      string
	ImageURL          string
	CreatedAt         time.Time `gorm:"not null"`
}

func (QRCode) TableName() string {
	return "gimcana_qr_codes"
}

type GimcanaDAO struct {
	db *gorm.DB
}

func NewGimcanaDAO(db *gorm.DB) *GimcanaDAO {
	return &GimcanaDAO{
		db: db,
	}
}

// InsertCampaign creates a campaign and its QR codes in one transaction, so
// total_qr_codes never disagrees with the owned QRCode rows.
func (d *GimcanaDAO) InsertCampaign(ctx context.Context, campaign Campaign, qrCodes []QRCode) (Campaign, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}

		for i := range qrCodes {
			qrCodes[i].CampaignID = campaign.ID
		}
		if err := tx.Create(&qrCodes).Error; err != nil {
			return err
		}

		campaign.QRCodes = qrCodes

		return nil
	})
	if err != nil {
		return Campaign{}, err
	}

	return campaign, nil
}

func (d *GimcanaDAO) FindCampaignByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

// FindActiveCampaigns returns campaigns whose active window contains now,
// newest first.
func (d *GimcanaDAO) FindActiveCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	var campaigns []Campaign

	result := d.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

func (d *GimcanaDAO) FindAllCampaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

// FindQRCodeByCode resolves a normalized (uppercased) code within a single
// campaign. A code belonging to another campaign is indistinguishable from an
// unknown one.
func (d *GimcanaDAO) FindQRCodeByCode(ctx context.Context, campaignID uint, code string) (QRCode, error) {
	var qr QRCode

	result := d.db.WithContext(ctx).
		Where("campaign_id = ? AND code = ?", campaignID, code).
		First(&qr)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return QRCode{}, ErrQRCodeNotFound
		}

		return QRCode{}, result.Error
	}

	return qr, nil
}

func (d *GimcanaDAO) FindQRCodesByCampaignID(ctx context.Context, campaignID uint) ([]QRCode, error) {
	var qrCodes []QRCode

	result := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("number ASC").
		Find(&qrCodes)
	if result.Error != nil {
		return nil, result.Error
	}

	return qrCodes, nil
}

// CountQRCodeScans counts how many users have scanned a given QR.
func (d *GimcanaDAO) CountQRCodeScans(ctx context.Context, qrID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&ScanEvent{}).
		Where("qr_id = ?", qrID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// CountCampaignStats returns how many users have at least one scan and how
// many have completed the set.
func (d *GimcanaDAO) CountCampaignStats(ctx context.Context, campaignID uint) (participants, completed int64, err error) {
	result := d.db.WithContext(ctx).
		Model(&ScanEvent{}).
		Where("campaign_id = ?", campaignID).
		Distinct("user_id").
		Count(&participants)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	result = d.db.WithContext(ctx).
		Model(&Completion{}).
		Where("campaign_id = ?", campaignID).
		Count(&completed)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	return participants, completed, nil
}
