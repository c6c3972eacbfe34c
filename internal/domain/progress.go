package domain

import "time"

// ScanResult is the outcome of recording one scan. Duplicates are outcomes,
// not errors: the counts always reflect the ledger after the call.
type ScanResult struct {
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

// QRStatus is one entry of the per-user checklist: which scan points the user
// has visited, without ever exposing the printed codes.
type QRStatus struct {
	Number            int        `json:"number"`
	EstablishmentName string     `json:"establishment_name"`
	LocationHint      string     `json:"location_hint,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
	Scanned           bool       `json:"scanned"`
	ScannedAt         *time.Time `json:"scanned_at,omitempty"`
}

type Progress struct {
	CampaignID      uint       `json:"campaign_id"`
	ScannedQRIDs    []uint     `json:"scanned_qr_ids"`
	ScannedCount    int        `json:"scanned_count"`
	TotalQRCodes    int        `json:"total_qr_codes"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	EnteredRaffle   bool       `json:"entered_raffle"`
	EnteredRaffleAt *time.Time `json:"entered_raffle_at,omitempty"`
	IsWinner        bool       `json:"is_winner"`
	WinnerPosition  int        `json:"winner_position,omitempty"`
	QRCodes         []QRStatus `json:"qr_codes"`
}

// ProgressSummary is the compact form embedded in campaign listings.
type ProgressSummary struct {
	ScannedCount  int  `json:"scanned_count"`
	Completed     bool `json:"completed"`
	EnteredRaffle bool `json:"entered_raffle"`
}

// ScanEvent is one immutable ledger entry as seen by read-side projections.
type ScanEvent struct {
	QRID      uint      `json:"qr_id"`
	ScannedAt time.Time `json:"scanned_at"`
}

// ScanRecord is the transactional outcome of appending to the scan ledger.
type ScanRecord struct {
	Duplicate     bool
	ScannedCount  int
	Completed     bool
	NewCompletion bool
	CompletedAt   *time.Time
}

// Participant is one row of the admin participants listing.
type Participant struct {
	UserID       uint       `json:"user_id"`
	ScannedCount int        `json:"scanned_count"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Claimed      bool       `json:"claimed"`
	ClaimKind    ClaimKind  `json:"claim_kind,omitempty"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
	FirstScanAt  time.Time  `json:"first_scan_at"`
}

type ClaimKind string

const (
	ClaimDirect      ClaimKind = "direct_claim"
	ClaimRaffleEntry ClaimKind = "raffle_entry"
)

type ClaimRecord struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CampaignID uint      `json:"campaign_id"`
	Kind       ClaimKind `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClaimOutcome reports a claim request. AlreadyClaimed distinguishes a replay
// from the first claim; both are successes.
type ClaimOutcome struct {
	Record         ClaimRecord `json:"record"`
	AlreadyClaimed bool        `json:"already_claimed"`
}
