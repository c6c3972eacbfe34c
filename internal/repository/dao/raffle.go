package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RaffleResult is immutable once created. The unique index on campaign_id is
// the effectively-once guard against duplicate draw triggers.
type RaffleResult struct {
	ID            uint  `gorm:"primaryKey"`
	CampaignID    uint  `gorm:"not null;uniqueIndex:uix_gimcana_raffle_campaign"`
	Seed          int64 `gorm:"not null"`
	TotalEntrants int   `gorm:"not null"`
	ExecutedAt    time.Time
	ExecutedBy    uint
	Winners       []RaffleWinner `gorm:"foreignKey:RaffleResultID"`
	CreatedAt     time.Time      `gorm:"not null"`
}

func (RaffleResult) TableName() string {
	return "gimcana_raffle_results"
}

type RaffleWinner struct {
	ID             uint `gorm:"primaryKey"`
	RaffleResultID uint `gorm:"not null;uniqueIndex:uix_gimcana_winner_result_user;uniqueIndex:uix_gimcana_winner_result_position"`
	UserID         uint `gorm:"not null;uniqueIndex:uix_gimcana_winner_result_user"`
	Position       int  `gorm:"not null;uniqueIndex:uix_gimcana_winner_result_position"`
}

func (RaffleWinner) TableName() string {
	return "gimcana_raffle_winners"
}

// InsertRaffleResult persists a draw outcome at most once per campaign. A
// duplicate or racing trigger loses on the unique index and is handed the
// already-recorded result instead; the second return value reports that path.
// The campaign's raffle_executed flag flips inside the same transaction.
func (d *GimcanaDAO) InsertRaffleResult(ctx context.Context, result RaffleResult, winners []RaffleWinner) (RaffleResult, bool, error) {
	var alreadyExecuted bool

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}},
			DoNothing: true,
		}).Create(&result)
		if insert.Error != nil {
			if !isUniqueViolation(insert.Error, "uix_gimcana_raffle_campaign") {
				return insert.Error
			}
			alreadyExecuted = true

			return nil
		}
		if insert.RowsAffected == 0 {
			alreadyExecuted = true

			return nil
		}

		for i := range winners {
			winners[i].RaffleResultID = result.ID
		}
		if len(winners) > 0 {
			if err := tx.Create(&winners).Error; err != nil {
				return err
			}
		}
		result.Winners = winners

		update := tx.Model(&Campaign{}).
			Where("id = ? AND raffle_executed = ?", result.CampaignID, false).
			Update("raffle_executed", true)

		return update.Error
	})
	if err != nil {
		return RaffleResult{}, false, err
	}

	if alreadyExecuted {
		existing, err := d.FindRaffleResultByCampaignID(ctx, result.CampaignID)
		if err != nil {
			return RaffleResult{}, false, err
		}

		return existing, true, nil
	}

	return result, false, nil
}

func (d *GimcanaDAO) FindRaffleResultByCampaignID(ctx context.Context, campaignID uint) (RaffleResult, error) {
	var result RaffleResult

	query := d.db.WithContext(ctx).
		Preload("Winners", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("campaign_id = ?", campaignID).
		First(&result)
	if query.Error != nil {
		if errors.Is(query.Error, gorm.ErrRecordNotFound) {
			return RaffleResult{}, ErrRaffleResultNotFound
		}

		return RaffleResult{}, query.Error
	}

	return result, nil
}

func (d *GimcanaDAO) FindAllRaffleResults(ctx context.Context) ([]RaffleResult, error) {
	var results []RaffleResult

	query := d.db.WithContext(ctx).
		Preload("Winners", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&results)
	if query.Error != nil {
		return nil, query.Error
	}

	return results, nil
}

// IsWinner reports whether the user appears among a campaign's winners and at
// which position.
func (d *GimcanaDAO) IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error) {
	result, err := d.FindRaffleResultByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, ErrRaffleResultNotFound) {
			return false, 0, nil
		}

		return false, 0, err
	}

	for _, winner := range result.Winners {
		if winner.UserID == userID {
			return true, winner.Position, nil
		}
	}

	return false, 0, nil
}
