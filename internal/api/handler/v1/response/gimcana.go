package response

import (
	"time"

	"github.com/tombdereus/gimcana-api/internal/domain"
)

type ScanResponse struct {
	QRID              uint       `json:"qr_id"`
	QRNumber          int        `json:"qr_number"`
	EstablishmentName string     `json:"establishment_name"`
	LocationHint      string     `json:"location_hint,omitempty"`
	IsDuplicate       bool       `json:"is_duplicate"`
	ScannedCount      int        `json:"scanned_count"`
	TotalQRCodes      int        `json:"total_qr_codes"`
	Completed         bool       `json:"completed"`
	IsNewCompletion   bool       `json:"is_new_completion"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	PrizeDescription  string     `json:"prize_description,omitempty"`
}

func NewScanResponse(r *domain.ScanResult) *ScanResponse {
	return &ScanResponse{
		QRID:              r.QRID,
		QRNumber:          r.QRNumber,
		EstablishmentName: r.EstablishmentName,
		LocationHint:      r.LocationHint,
		IsDuplicate:       r.IsDuplicate,
		ScannedCount:      r.ScannedCount,
		TotalQRCodes:      r.TotalQRCodes,
		Completed:         r.Completed,
		IsNewCompletion:   r.IsNewCompletion,
		CompletedAt:       r.CompletedAt,
		PrizeDescription:  r.PrizeDescription,
	}
}

type ClaimResponse struct {
	Kind           string    `json:"kind"`
	CampaignID     uint      `json:"campaign_id"`
	ClaimedAt      time.Time `json:"claimed_at"`
	AlreadyClaimed bool      `json:"already_claimed"`
}

func NewClaimResponse(o *domain.ClaimOutcome) *ClaimResponse {
	return &ClaimResponse{
		Kind:           string(o.Record.Kind),
		CampaignID:     o.Record.CampaignID,
		ClaimedAt:      o.Record.CreatedAt,
		AlreadyClaimed: o.AlreadyClaimed,
	}
}

type RaffleWinnerResponse struct {
	UserID   uint `json:"user_id"`
	Position int  `json:"position"`
}

type RaffleResultResponse struct {
	CampaignID     uint                   `json:"campaign_id"`
	CampaignName   string                 `json:"campaign_name,omitempty"`
	TotalEntrants  int                    `json:"total_entrants"`
	ExecutedAt     time.Time              `json:"executed_at"`
	ExecutedBy     uint                   `json:"executed_by"`
	AlreadyDrawn   bool                   `json:"already_drawn,omitempty"`
	IsWinner       *bool                  `json:"is_winner,omitempty"`
	Winners        []RaffleWinnerResponse `json:"winners"`
}

func NewRaffleResultResponse(r *domain.RaffleResult) *RaffleResultResponse {
	winners := make([]RaffleWinnerResponse, 0, len(r.Winners))
	for _, w := range r.Winners {
		winners = append(winners, RaffleWinnerResponse{UserID: w.UserID, Position: w.Position})
	}

	return &RaffleResultResponse{
		CampaignID:    r.CampaignID,
		CampaignName:  r.CampaignName,
		TotalEntrants: r.TotalEntrants,
		ExecutedAt:    r.ExecutedAt,
		ExecutedBy:    r.ExecutedBy,
		Winners:       winners,
	}
}

type QRCodeResponse struct {
	ID                uint   `json:"id"`
	Number            int    `json:"number"`
	EstablishmentName string `json:"establishment_name"`
	LocationHint      string `json:"location_hint,omitempty"`
	Code              string `json:"code,omitempty"`
	ScanCount         *int64 `json:"scan_count,omitempty"`
}

type RaffleEntrantResponse struct {
	UserID    uint      `json:"user_id"`
	EnteredAt time.Time `json:"entered_at"`
}
