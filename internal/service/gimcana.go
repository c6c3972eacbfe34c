package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tombdereus/gimcana-api/internal/domain"
	"github.com/tombdereus/gimcana-api/internal/repository"
)

var (
	ErrCampaignNotFound     = repository.ErrCampaignNotFound
	ErrQRCodeNotFound       = repository.ErrQRCodeNotFound
	ErrRaffleResultNotFound = repository.ErrRaffleResultNotFound

	ErrCampaignInactive  = errors.New("campaign is not active")
	ErrNotCompleted      = errors.New("all qr codes must be scanned first")
	ErrNotRaffleCampaign = errors.New("campaign prize is not a raffle")
	ErrRaffleNotDue      = errors.New("raffle date has not been reached")
	ErrEmptyRafflePool   = errors.New("no eligible entrants for the raffle")
	ErrRaffleDateMissing = errors.New("raffle campaigns require a raffle date")
)

type GimcanaRepository interface {
	CreateCampaign(ctx context.Context, campaign domain.Campaign, qrCodes []domain.QRCode) (domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id uint) (domain.Campaign, error)
	GetActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	GetAllCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetQRCodeByCode(ctx context.Context, campaignID uint, code string) (domain.QRCode, error)
	GetQRCodesByCampaignID(ctx context.Context, campaignID uint) ([]domain.QRCode, error)
	CountQRCodeScans(ctx context.Context, qrID uint) (int64, error)
	GetCampaignStats(ctx context.Context, campaignID uint) (domain.CampaignStats, error)
	RecordScan(ctx context.Context, userID, campaignID, qrID uint, totalQRCodes int, now time.Time) (domain.ScanRecord, error)
	GetScanEvents(ctx context.Context, userID, campaignID uint) ([]domain.ScanEvent, error)
	GetCompletion(ctx context.Context, userID, campaignID uint) (*time.Time, error)
	EnsureCompletion(ctx context.Context, userID, campaignID uint, completedAt time.Time) (*time.Time, error)
	CreateClaim(ctx context.Context, userID, campaignID uint, kind domain.ClaimKind, now time.Time) (domain.ClaimOutcome, error)
	GetClaim(ctx context.Context, userID, campaignID uint) (*domain.ClaimRecord, error)
	GetParticipants(ctx context.Context, campaignID uint) ([]domain.Participant, error)
	GetRaffleEntrants(ctx context.Context, campaignID uint) ([]domain.RaffleEntrant, error)
	CreateRaffleResult(ctx context.Context, result domain.RaffleResult) (domain.RaffleResult, bool, error)
	GetRaffleResultByCampaignID(ctx context.Context, campaignID uint) (domain.RaffleResult, error)
	GetAllRaffleResults(ctx context.Context) ([]domain.RaffleResult, error)
	IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error)
}

type GimcanaService struct {
	repo           GimcanaRepository
	defaultWinners int
}

func NewGimcanaService(repo GimcanaRepository, defaultWinners int) *GimcanaService {
	if defaultWinners <= 0 {
		defaultWinners = 1
	}

	return &GimcanaService{
		repo:           repo,
		defaultWinners: defaultWinners,
	}
}

// NormalizeCode uppercases and trims a scanned code. The server never trusts
// client-side casing.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Scan records that the user scanned rawCode for the campaign. Duplicate
// scans of the same QR are harmless no-ops that report the current state;
// the scan that closes the set reports IsNewCompletion exactly once.
func (s *GimcanaService) Scan(ctx context.Context, userID, campaignID uint, rawCode string) (domain.ScanResult, error) {
	campaign, err := s.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.ScanResult{}, ErrCampaignNotFound
		}

		return domain.ScanResult{}, fmt.Errorf("s.repo.GetCampaignByID -> %w", err)
	}

	now := time.Now().UTC()
	if !campaign.IsCurrentlyActive(now) {
		return domain.ScanResult{}, ErrCampaignInactive
	}

	qr, err := s.repo.GetQRCodeByCode(ctx, campaignID, NormalizeCode(rawCode))
	if err != nil {
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return domain.ScanResult{}, ErrQRCodeNotFound
		}

		return domain.ScanResult{}, fmt.Errorf("s.repo.GetQRCodeByCode -> %w", err)
	}

	record, err := s.repo.RecordScan(ctx, userID, campaignID, qr.ID, campaign.TotalQRCodes, now)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.repo.RecordScan -> %w", err)
	}

	result := domain.ScanResult{
		QRID:              qr.ID,
		QRNumber:          qr.Number,
		EstablishmentName: qr.EstablishmentName,
		LocationHint:      qr.LocationHint,
		IsDuplicate:       record.Duplicate,
		ScannedCount:      record.ScannedCount,
		TotalQRCodes:      campaign.TotalQRCodes,
		Completed:         record.Completed,
		IsNewCompletion:   record.NewCompletion,
		CompletedAt:       record.CompletedAt,
	}
	if record.NewCompletion {
		result.PrizeDescription = campaign.PrizeDescription
		zap.L().Info("gimcana card completed",
			zap.Uint("user_id", userID),
			zap.Uint("campaign_id", campaignID),
			zap.Int("total_qr_codes", campaign.TotalQRCodes),
		)
	}

	return result, nil
}

// resolveCompletion returns the user's completion timestamp for a campaign.
// The scan ledger is the source of truth: when it already holds the full set
// but the completion row is missing (two distinct closing scans racing can
// commit without either inserting it), the row is backfilled from the last
// scan instant.
func (s *GimcanaService) resolveCompletion(ctx context.Context, userID uint, campaign domain.Campaign, events []domain.ScanEvent) (*time.Time, error) {
	completedAt, err := s.repo.GetCompletion(ctx, userID, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetCompletion -> %w", err)
	}
	if completedAt != nil || len(events) == 0 || len(events) < campaign.TotalQRCodes {
		return completedAt, nil
	}

	// Events are ordered by scan time, so the last one closed the set.
	completedAt, err = s.repo.EnsureCompletion(ctx, userID, campaign.ID, events[len(events)-1].ScannedAt)
	if err != nil {
		return nil, fmt.Errorf("s.repo.EnsureCompletion -> %w", err)
	}

	return completedAt, nil
}

// GetProgress projects the user's state in a campaign from the scan ledger,
// claims and raffle winners. Counts are recomputed from the event set, never
// from a cached counter.
func (s *GimcanaService) GetProgress(ctx context.Context, userID, campaignID uint) (domain.Progress, error) {
	campaign, err := s.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Progress{}, ErrCampaignNotFound
		}

		return domain.Progress{}, fmt.Errorf("s.repo.GetCampaignByID -> %w", err)
	}

	events, err := s.repo.GetScanEvents(ctx, userID, campaignID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("s.repo.GetScanEvents -> %w", err)
	}

	scannedAt := make(map[uint]time.Time, len(events))
	scannedIDs := make([]uint, 0, len(events))
	for _, event := range events {
		scannedAt[event.QRID] = event.ScannedAt
		scannedIDs = append(scannedIDs, event.QRID)
	}

	qrCodes, err := s.repo.GetQRCodesByCampaignID(ctx, campaignID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("s.repo.GetQRCodesByCampaignID -> %w", err)
	}

	statuses := make([]domain.QRStatus, len(qrCodes))
	for i, qr := range qrCodes {
		status := domain.QRStatus{
			Number:            qr.Number,
			EstablishmentName: qr.EstablishmentName,
			LocationHint:      qr.LocationHint,
			ImageURL:          qr.ImageURL,
		}
		if at, ok := scannedAt[qr.ID]; ok {
			status.Scanned = true
			scanTime := at
			status.ScannedAt = &scanTime
		}
		statuses[i] = status
	}

	completedAt, err := s.resolveCompletion(ctx, userID, campaign, events)
	if err != nil {
		return domain.Progress{}, err
	}

	progress := domain.Progress{
		CampaignID:   campaignID,
		ScannedQRIDs: scannedIDs,
		ScannedCount: len(events),
		TotalQRCodes: campaign.TotalQRCodes,
		Completed:    completedAt != nil,
		CompletedAt:  completedAt,
		QRCodes:      statuses,
	}

	claim, err := s.repo.GetClaim(ctx, userID, campaignID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("s.repo.GetClaim -> %w", err)
	}
	if claim != nil {
		progress.EnteredRaffle = claim.Kind == domain.ClaimRaffleEntry
		claimedAt := claim.CreatedAt
		progress.EnteredRaffleAt = &claimedAt
	}

	if campaign.RaffleExecuted {
		isWinner, position, err := s.repo.IsWinner(ctx, campaignID, userID)
		if err != nil {
			return domain.Progress{}, fmt.Errorf("s.repo.IsWinner -> %w", err)
		}
		progress.IsWinner = isWinner
		progress.WinnerPosition = position
	}

	return progress, nil
}

// Claim records the user's prize claim (direct prize) or raffle entry,
// depending on the campaign's prize type. The operation is idempotent:
// repeated calls return the original record and never fail.
func (s *GimcanaService) Claim(ctx context.Context, userID, campaignID uint) (domain.ClaimOutcome, error) {
	campaign, err := s.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.ClaimOutcome{}, ErrCampaignNotFound
		}

		return domain.ClaimOutcome{}, fmt.Errorf("s.repo.GetCampaignByID -> %w", err)
	}

	events, err := s.repo.GetScanEvents(ctx, userID, campaignID)
	if err != nil {
		return domain.ClaimOutcome{}, fmt.Errorf("s.repo.GetScanEvents -> %w", err)
	}

	completedAt, err := s.resolveCompletion(ctx, userID, campaign, events)
	if err != nil {
		return domain.ClaimOutcome{}, err
	}
	if completedAt == nil {
		return domain.ClaimOutcome{}, ErrNotCompleted
	}

	kind := domain.ClaimDirect
	if campaign.PrizeType == domain.PrizeRaffle {
		kind = domain.ClaimRaffleEntry
	}

	outcome, err := s.repo.CreateClaim(ctx, userID, campaignID, kind, time.Now().UTC())
	if err != nil {
		return domain.ClaimOutcome{}, fmt.Errorf("s.repo.CreateClaim -> %w", err)
	}

	return outcome, nil
}

// ExecuteRaffle runs the draw for a raffle campaign whose raffle date has
// passed. Execution is effectively-once: a duplicate or concurrent trigger is
// handed the already-recorded result and the second return value is true.
func (s *GimcanaService) ExecuteRaffle(ctx context.Context, campaignID, executedBy uint, numWinners int) (domain.RaffleResult, bool, error) {
	campaign, err := s.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.RaffleResult{}, false, ErrCampaignNotFound
		}

		return domain.RaffleResult{}, false, fmt.Errorf("s.repo.GetCampaignByID -> %w", err)
	}

	if campaign.PrizeType != domain.PrizeRaffle {
		return domain.RaffleResult{}, false, ErrNotRaffleCampaign
	}

	now := time.Now().UTC()
	if campaign.RaffleDate != nil && now.Before(*campaign.RaffleDate) {
		return domain.RaffleResult{}, false, ErrRaffleNotDue
	}

	entrants, err := s.repo.GetRaffleEntrants(ctx, campaignID)
	if err != nil {
		return domain.RaffleResult{}, false, fmt.Errorf("s.repo.GetRaffleEntrants -> %w", err)
	}
	if len(entrants) == 0 {
		return domain.RaffleResult{}, false, ErrEmptyRafflePool
	}

	if numWinners <= 0 {
		numWinners = campaign.NumWinners
	}
	if numWinners <= 0 {
		numWinners = s.defaultWinners
	}

	seed, err := newRaffleSeed()
	if err != nil {
		return domain.RaffleResult{}, false, fmt.Errorf("newRaffleSeed -> %w", err)
	}

	result := domain.RaffleResult{
		CampaignID:    campaignID,
		Seed:          seed,
		TotalEntrants: len(entrants),
		ExecutedAt:    now,
		ExecutedBy:    executedBy,
		Winners:       DrawWinners(seed, entrants, numWinners),
	}

	recorded, alreadyExecuted, err := s.repo.CreateRaffleResult(ctx, result)
	if err != nil {
		return domain.RaffleResult{}, false, fmt.Errorf("s.repo.CreateRaffleResult -> %w", err)
	}

	if !alreadyExecuted {
		zap.L().Info("raffle executed",
			zap.Uint("campaign_id", campaignID),
			zap.Int("total_entrants", len(entrants)),
			zap.Int("winners", len(recorded.Winners)),
		)
	}

	return recorded, alreadyExecuted, nil
}

// GetRaffleResult returns the recorded draw for a campaign.
// ErrRaffleResultNotFound means the raffle has not been executed yet.
func (s *GimcanaService) GetRaffleResult(ctx context.Context, campaignID uint) (domain.RaffleResult, error) {
	result, err := s.repo.GetRaffleResultByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrRaffleResultNotFound) {
			return domain.RaffleResult{}, ErrRaffleResultNotFound
		}

		return domain.RaffleResult{}, fmt.Errorf("s.repo.GetRaffleResultByCampaignID -> %w", err)
	}

	return result, nil
}

func (s *GimcanaService) IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error) {
	return s.repo.IsWinner(ctx, campaignID, userID)
}

func (s *GimcanaService) GetCampaign(ctx context.Context, campaignID uint, withStats bool) (domain.Campaign, error) {
	campaign, err := s.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.repo.GetCampaignByID -> %w", err)
	}

	if withStats {
		stats, err := s.repo.GetCampaignStats(ctx, campaignID)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("s.repo.GetCampaignStats -> %w", err)
		}
		campaign.Stats = &stats
	}

	return campaign, nil
}

// ListActiveCampaigns returns campaigns currently in their active window,
// each annotated with the caller's progress summary.
func (s *GimcanaService) ListActiveCampaigns(ctx context.Context, userID uint) ([]domain.Campaign, error) {
	campaigns, err := s.repo.GetActiveCampaigns(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetActiveCampaigns -> %w", err)
	}

	for i := range campaigns {
		events, err := s.repo.GetScanEvents(ctx, userID, campaigns[i].ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.GetScanEvents -> %w", err)
		}

		claim, err := s.repo.GetClaim(ctx, userID, campaigns[i].ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.GetClaim -> %w", err)
		}

		campaigns[i].UserProgress = &domain.ProgressSummary{
			ScannedCount:  len(events),
			Completed:     len(events) >= campaigns[i].TotalQRCodes,
			EnteredRaffle: claim != nil && claim.Kind == domain.ClaimRaffleEntry,
		}
	}

	return campaigns, nil
}

// ListAllCampaigns returns every campaign with participation stats, for the
// admin backoffice.
func (s *GimcanaService) ListAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.repo.GetAllCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCampaigns -> %w", err)
	}

	for i := range campaigns {
		stats, err := s.repo.GetCampaignStats(ctx, campaigns[i].ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.GetCampaignStats -> %w", err)
		}
		campaigns[i].Stats = &stats
	}

	return campaigns, nil
}

func (s *GimcanaService) ListQRCodes(ctx context.Context, campaignID uint) ([]domain.QRCode, error) {
	if _, err := s.GetCampaign(ctx, campaignID, false); err != nil {
		return nil, err
	}

	qrCodes, err := s.repo.GetQRCodesByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetQRCodesByCampaignID -> %w", err)
	}

	return qrCodes, nil
}

// GetQRScanCounts returns per-QR scan totals, keyed by QR id. Admin only.
func (s *GimcanaService) GetQRScanCounts(ctx context.Context, qrCodes []domain.QRCode) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(qrCodes))
	for _, qr := range qrCodes {
		count, err := s.repo.CountQRCodeScans(ctx, qr.ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.CountQRCodeScans -> %w", err)
		}
		counts[qr.ID] = count
	}

	return counts, nil
}

func (s *GimcanaService) ListParticipants(ctx context.Context, campaignID uint) ([]domain.Participant, error) {
	if _, err := s.GetCampaign(ctx, campaignID, false); err != nil {
		return nil, err
	}

	participants, err := s.repo.GetParticipants(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetParticipants -> %w", err)
	}

	return participants, nil
}

func (s *GimcanaService) ListRaffleEntrants(ctx context.Context, campaignID uint) ([]domain.RaffleEntrant, error) {
	if _, err := s.GetCampaign(ctx, campaignID, false); err != nil {
		return nil, err
	}

	entrants, err := s.repo.GetRaffleEntrants(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetRaffleEntrants -> %w", err)
	}

	return entrants, nil
}

// ListRaffleHistory returns every executed draw, newest first, with the
// campaign names resolved.
func (s *GimcanaService) ListRaffleHistory(ctx context.Context) ([]domain.RaffleResult, error) {
	results, err := s.repo.GetAllRaffleResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllRaffleResults -> %w", err)
	}

	campaigns, err := s.repo.GetAllCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCampaigns -> %w", err)
	}
	names := make(map[uint]string, len(campaigns))
	for _, campaign := range campaigns {
		names[campaign.ID] = campaign.Name
	}

	for i := range results {
		results[i].CampaignName = names[results[i].CampaignID]
	}

	return results, nil
}

// QRItem describes one scan point of a campaign being created.
type QRItem struct {
	EstablishmentName string
	LocationHint      string
	ImageURL          string
}

// CreateCampaign creates a campaign together with its freshly generated QR
// codes. Custom names/hints apply positionally; remaining points get a
// numbered default.
func (s *GimcanaService) CreateCampaign(ctx context.Context, campaign domain.Campaign, qrItems []QRItem) (domain.Campaign, error) {
	if campaign.PrizeType == domain.PrizeRaffle && campaign.RaffleDate == nil {
		return domain.Campaign{}, ErrRaffleDateMissing
	}
	if campaign.NumWinners <= 0 {
		campaign.NumWinners = s.defaultWinners
	}

	qrCodes := make([]domain.QRCode, campaign.TotalQRCodes)
	for i := 0; i < campaign.TotalQRCodes; i++ {
		code, err := generateQRCode()
		if err != nil {
			return domain.Campaign{}, err
		}

		qr := domain.QRCode{
			Code:              code,
			Number:            i + 1,
			EstablishmentName: fmt.Sprintf("Punt %d", i+1),
		}
		if i < len(qrItems) {
			if qrItems[i].EstablishmentName != "" {
				qr.EstablishmentName = qrItems[i].EstablishmentName
			}
			qr.LocationHint = qrItems[i].LocationHint
			qr.ImageURL = qrItems[i].ImageURL
		}
		qrCodes[i] = qr
	}

	created, err := s.repo.CreateCampaign(ctx, campaign, qrCodes)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.CreateCampaign -> %w", err)
	}

	zap.L().Info("gimcana campaign created",
		zap.Uint("campaign_id", created.ID),
		zap.String("name", created.Name),
		zap.Int("qr_codes", campaign.TotalQRCodes),
		zap.String("prize_type", string(created.PrizeType)),
	)

	return created, nil
}
