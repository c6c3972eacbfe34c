package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tombdereus/gimcana-api/internal/domain"
	"github.com/tombdereus/gimcana-api/internal/repository/dao"
)

var (
	ErrCampaignNotFound     = dao.ErrCampaignNotFound
	ErrQRCodeNotFound       = dao.ErrQRCodeNotFound
	ErrRaffleResultNotFound = dao.ErrRaffleResultNotFound
)

type GimcanaDAO interface {
	InsertCampaign(ctx context.Context, campaign dao.Campaign, qrCodes []dao.QRCode) (dao.Campaign, error)
	FindCampaignByID(ctx context.Context, id uint) (dao.Campaign, error)
	FindActiveCampaigns(ctx context.Context, now time.Time) ([]dao.Campaign, error)
	FindAllCampaigns(ctx context.Context) ([]dao.Campaign, error)
	FindQRCodeByCode(ctx context.Context, campaignID uint, code string) (dao.QRCode, error)
	FindQRCodesByCampaignID(ctx context.Context, campaignID uint) ([]dao.QRCode, error)
	CountQRCodeScans(ctx context.Context, qrID uint) (int64, error)
	CountCampaignStats(ctx context.Context, campaignID uint) (participants, completed int64, err error)
	RecordScan(ctx context.Context, userID, campaignID, qrID uint, totalQRCodes int, now time.Time) (dao.ScanRecord, error)
	FindScanEvents(ctx context.Context, userID, campaignID uint) ([]dao.ScanEvent, error)
	FindCompletion(ctx context.Context, userID, campaignID uint) (dao.Completion, bool, error)
	InsertCompletion(ctx context.Context, userID, campaignID uint, completedAt time.Time) (dao.Completion, error)
	InsertClaim(ctx context.Context, claim dao.ClaimRecord) (dao.ClaimRecord, bool, error)
	FindClaim(ctx context.Context, userID, campaignID uint) (dao.ClaimRecord, bool, error)
	FindParticipants(ctx context.Context, campaignID uint) ([]dao.ParticipantRow, error)
	FindRaffleEntrants(ctx context.Context, campaignID uint) ([]dao.ClaimRecord, error)
	InsertRaffleResult(ctx context.Context, result dao.RaffleResult, winners []dao.RaffleWinner) (dao.RaffleResult, bool, error)
	FindRaffleResultByCampaignID(ctx context.Context, campaignID uint) (dao.RaffleResult, error)
	FindAllRaffleResults(ctx context.Context) ([]dao.RaffleResult, error)
	IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error)
}

type GimcanaRepository struct {
	dao GimcanaDAO
}

func NewGimcanaRepository(dao GimcanaDAO) *GimcanaRepository {
	return &GimcanaRepository{
		dao: dao,
	}
}

func (r *GimcanaRepository) campaignDomainToDao(c domain.Campaign) dao.Campaign {
	return dao.Campaign{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		TotalQRCodes:     c.TotalQRCodes,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		PrizeType:        string(c.PrizeType),
		PrizeDescription: c.PrizeDescription,
		PrizeImageURL:    c.PrizeImageURL,
		Rules:            c.Rules,
		RulesURL:         c.RulesURL,
		ImageURL:         c.ImageURL,
		NumWinners:       c.NumWinners,
		RaffleDate:       c.RaffleDate,
		RaffleExecuted:   c.RaffleExecuted,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *GimcanaRepository) campaignDaoToDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		TotalQRCodes:     c.TotalQRCodes,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		PrizeType:        domain.PrizeType(c.PrizeType),
		PrizeDescription: c.PrizeDescription,
		PrizeImageURL:    c.PrizeImageURL,
		Rules:            c.Rules,
		RulesURL:         c.RulesURL,
		ImageURL:         c.ImageURL,
		NumWinners:       c.NumWinners,
		RaffleDate:       c.RaffleDate,
		RaffleExecuted:   c.RaffleExecuted,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *GimcanaRepository) qrDomainToDao(qr domain.QRCode) dao.QRCode {
	return dao.QRCode{
		ID:                qr.ID,
		CampaignID:        qr.CampaignID,
		Code:              qr.Code,
		Number:            qr.Number,
		EstablishmentName: qr.EstablishmentName,
		LocationHint:      qr.LocationHint,
		ImageURL:          qr.ImageURL,
		CreatedAt:         qr.CreatedAt,
	}
}

func (r *GimcanaRepository) qrDaoToDomain(qr dao.QRCode) domain.QRCode {
	return domain.QRCode{
		ID:                qr.ID,
		CampaignID:        qr.CampaignID,
		Code:              qr.Code,
		Number:            qr.Number,
		EstablishmentName: qr.EstablishmentName,
		LocationHint:      qr.LocationHint,
		ImageURL:          qr.ImageURL,
		CreatedAt:         qr.CreatedAt,
	}
}

func (r *GimcanaRepository) claimDaoToDomain(c dao.ClaimRecord) domain.ClaimRecord {
	return domain.ClaimRecord{
		ID:         c.ID,
		UserID:     c.UserID,
		CampaignID: c.CampaignID,
		Kind:       domain.ClaimKind(c.Kind),
		CreatedAt:  c.CreatedAt,
	}
}

func (r *GimcanaRepository) raffleResultDaoToDomain(result dao.RaffleResult) domain.RaffleResult {
	winners := make([]domain.RaffleWinner, len(result.Winners))
	for i, w := range result.Winners {
		winners[i] = domain.RaffleWinner{
			UserID:   w.UserID,
			Position: w.Position,
		}
	}

	return domain.RaffleResult{
		ID:            result.ID,
		CampaignID:    result.CampaignID,
		Seed:          result.Seed,
		TotalEntrants: result.TotalEntrants,
		ExecutedAt:    result.ExecutedAt,
		ExecutedBy:    result.ExecutedBy,
		Winners:       winners,
	}
}

func (r *GimcanaRepository) CreateCampaign(ctx context.Context, campaign domain.Campaign, qrCodes []domain.QRCode) (domain.Campaign, error) {
	daoQRCodes := make([]dao.QRCode, len(qrCodes))
	for i, qr := range qrCodes {
		daoQRCodes[i] = r.qrDomainToDao(qr)
	}

	created, err := r.dao.InsertCampaign(ctx, r.campaignDomainToDao(campaign), daoQRCodes)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.InsertCampaign -> %w", err)
	}

	return r.campaignDaoToDomain(created), nil
}

func (r *GimcanaRepository) GetCampaignByID(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, err := r.dao.FindCampaignByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	return r.campaignDaoToDomain(campaign), nil
}

func (r *GimcanaRepository) GetActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	campaigns, err := r.dao.FindActiveCampaigns(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveCampaigns -> %w", err)
	}

	return r.campaignsDaoToDomain(campaigns), nil
}

func (r *GimcanaRepository) GetAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := r.dao.FindAllCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllCampaigns -> %w", err)
	}

	return r.campaignsDaoToDomain(campaigns), nil
}

func (r *GimcanaRepository) campaignsDaoToDomain(campaigns []dao.Campaign) []domain.Campaign {
	converted := make([]domain.Campaign, len(campaigns))
	for i, c := range campaigns {
		converted[i] = r.campaignDaoToDomain(c)
	}

	return converted
}

func (r *GimcanaRepository) GetQRCodeByCode(ctx context.Context, campaignID uint, code string) (domain.QRCode, error) {
	qr, err := r.dao.FindQRCodeByCode(ctx, campaignID, code)
	if err != nil {
		return domain.QRCode{}, err
	}

	return r.qrDaoToDomain(qr), nil
}

func (r *GimcanaRepository) GetQRCodesByCampaignID(ctx context.Context, campaignID uint) ([]domain.QRCode, error) {
	qrCodes, err := r.dao.FindQRCodesByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindQRCodesByCampaignID -> %w", err)
	}

	converted := make([]domain.QRCode, len(qrCodes))
	for i, qr := range qrCodes {
		converted[i] = r.qrDaoToDomain(qr)
	}

	return converted, nil
}

func (r *GimcanaRepository) CountQRCodeScans(ctx context.Context, qrID uint) (int64, error) {
	count, err := r.dao.CountQRCodeScans(ctx, qrID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountQRCodeScans -> %w", err)
	}

	return count, nil
}

func (r *GimcanaRepository) GetCampaignStats(ctx context.Context, campaignID uint) (domain.CampaignStats, error) {
	participants, completed, err := r.dao.CountCampaignStats(ctx, campaignID)
	if err != nil {
		return domain.CampaignStats{}, fmt.Errorf("r.dao.CountCampaignStats -> %w", err)
	}

	return domain.CampaignStats{
		Participants: participants,
		Completed:    completed,
	}, nil
}

func (r *GimcanaRepository) RecordScan(ctx context.Context, userID, campaignID, qrID uint, totalQRCodes int, now time.Time) (domain.ScanRecord, error) {
	record, err := r.dao.RecordScan(ctx, userID, campaignID, qrID, totalQRCodes, now)
	if err != nil {
		return domain.ScanRecord{}, fmt.Errorf("r.dao.RecordScan -> %w", err)
	}

	return domain.ScanRecord{
		Duplicate:     record.Duplicate,
		ScannedCount:  record.ScannedCount,
		Completed:     record.Completed,
		NewCompletion: record.NewCompletion,
		CompletedAt:   record.CompletedAt,
	}, nil
}

func (r *GimcanaRepository) GetScanEvents(ctx context.Context, userID, campaignID uint) ([]domain.ScanEvent, error) {
	events, err := r.dao.FindScanEvents(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindScanEvents -> %w", err)
	}

	converted := make([]domain.ScanEvent, len(events))
	for i, event := range events {
		converted[i] = domain.ScanEvent{
			QRID:      event.QRID,
			ScannedAt: event.ScannedAt,
		}
	}

	return converted, nil
}

func (r *GimcanaRepository) GetCompletion(ctx context.Context, userID, campaignID uint) (*time.Time, error) {
	completion, found, err := r.dao.FindCompletion(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindCompletion -> %w", err)
	}
	if !found {
		return nil, nil
	}

	completedAt := completion.CompletedAt

	return &completedAt, nil
}

// EnsureCompletion backfills the completion row when the scan ledger already
// holds the full set but the row is missing, and returns its timestamp.
func (r *GimcanaRepository) EnsureCompletion(ctx context.Context, userID, campaignID uint, completedAt time.Time) (*time.Time, error) {
	completion, err := r.dao.InsertCompletion(ctx, userID, campaignID, completedAt)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertCompletion -> %w", err)
	}

	at := completion.CompletedAt

	return &at, nil
}

func (r *GimcanaRepository) CreateClaim(ctx context.Context, userID, campaignID uint, kind domain.ClaimKind, now time.Time) (domain.ClaimOutcome, error) {
	claim := dao.ClaimRecord{
		UserID:     userID,
		CampaignID: campaignID,
		Kind:       string(kind),
		CreatedAt:  now,
	}

	recorded, already, err := r.dao.InsertClaim(ctx, claim)
	if err != nil {
		return domain.ClaimOutcome{}, fmt.Errorf("r.dao.InsertClaim -> %w", err)
	}

	return domain.ClaimOutcome{
		Record:         r.claimDaoToDomain(recorded),
		AlreadyClaimed: already,
	}, nil
}

func (r *GimcanaRepository) GetClaim(ctx context.Context, userID, campaignID uint) (*domain.ClaimRecord, error) {
	claim, found, err := r.dao.FindClaim(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindClaim -> %w", err)
	}
	if !found {
		return nil, nil
	}

	converted := r.claimDaoToDomain(claim)

	return &converted, nil
}

func (r *GimcanaRepository) GetParticipants(ctx context.Context, campaignID uint) ([]domain.Participant, error) {
	rows, err := r.dao.FindParticipants(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipants -> %w", err)
	}

	participants := make([]domain.Participant, len(rows))
	for i, row := range rows {
		participants[i] = domain.Participant{
			UserID:       row.UserID,
			ScannedCount: row.ScannedCount,
			Completed:    row.Completed,
			CompletedAt:  row.CompletedAt,
			Claimed:      row.Claimed,
			ClaimKind:    domain.ClaimKind(row.ClaimKind),
			ClaimedAt:    row.ClaimedAt,
			FirstScanAt:  row.FirstScanAt,
		}
	}

	return participants, nil
}

func (r *GimcanaRepository) GetRaffleEntrants(ctx context.Context, campaignID uint) ([]domain.RaffleEntrant, error) {
	claims, err := r.dao.FindRaffleEntrants(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRaffleEntrants -> %w", err)
	}

	entrants := make([]domain.RaffleEntrant, len(claims))
	for i, claim := range claims {
		entrants[i] = domain.RaffleEntrant{
			UserID:    claim.UserID,
			EnteredAt: claim.CreatedAt,
		}
	}

	return entrants, nil
}

func (r *GimcanaRepository) CreateRaffleResult(ctx context.Context, result domain.RaffleResult) (domain.RaffleResult, bool, error) {
	daoWinners := make([]dao.RaffleWinner, len(result.Winners))
	for i, w := range result.Winners {
		daoWinners[i] = dao.RaffleWinner{
			UserID:   w.UserID,
			Position: w.Position,
		}
	}

	daoResult := dao.RaffleResult{
		CampaignID:    result.CampaignID,
		Seed:          result.Seed,
		TotalEntrants: result.TotalEntrants,
		ExecutedAt:    result.ExecutedAt,
		ExecutedBy:    result.ExecutedBy,
	}

	created, already, err := r.dao.InsertRaffleResult(ctx, daoResult, daoWinners)
	if err != nil {
		return domain.RaffleResult{}, false, fmt.Errorf("r.dao.InsertRaffleResult -> %w", err)
	}

	return r.raffleResultDaoToDomain(created), already, nil
}

func (r *GimcanaRepository) GetRaffleResultByCampaignID(ctx context.Context, campaignID uint) (domain.RaffleResult, error) {
	result, err := r.dao.FindRaffleResultByCampaignID(ctx, campaignID)
	if err != nil {
		return domain.RaffleResult{}, err
	}

	return r.raffleResultDaoToDomain(result), nil
}

func (r *GimcanaRepository) GetAllRaffleResults(ctx context.Context) ([]domain.RaffleResult, error) {
	results, err := r.dao.FindAllRaffleResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllRaffleResults -> %w", err)
	}

	converted := make([]domain.RaffleResult, len(results))
	for i, result := range results {
		converted[i] = r.raffleResultDaoToDomain(result)
	}

	return converted, nil
}

func (r *GimcanaRepository) IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error) {
	isWinner, position, err := r.dao.IsWinner(ctx, campaignID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("r.dao.IsWinner -> %w", err)
	}

	return isWinner, position, nil
}
