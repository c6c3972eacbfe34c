package domain

import "time"

type PrizeType string

const (
	// PrizeDirect is awarded automatically to every user who completes the QR set.
	PrizeDirect PrizeType = "direct"
	// PrizeRaffle enters completing users into a draw held on the raffle date.
	PrizeRaffle PrizeType = "raffle"
)

type Campaign struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	TotalQRCodes     int        `json:"total_qr_codes"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	PrizeType        PrizeType  `json:"prize_type"`
	PrizeDescription string     `json:"prize_description"`
	PrizeImageURL    string     `json:"prize_image_url,omitempty"`
	Rules            string     `json:"rules,omitempty"`
	RulesURL         string     `json:"rules_url,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	NumWinners       int        `json:"num_winners"`
	RaffleDate       *time.Time `json:"raffle_date,omitempty"`
	RaffleExecuted   bool       `json:"raffle_executed"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Stats        *CampaignStats   `json:"stats,omitempty"`
	UserProgress *ProgressSummary `json:"user_progress,omitempty"`
}

// IsCurrentlyActive reports whether the campaign accepts scans at the given
// instant: the active flag is set and now falls inside [StartDate, EndDate].
func (c Campaign) IsCurrentlyActive(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

type CampaignStats struct {
	Participants int64 `json:"participants"`
	Completed    int64 `json:"completed"`
}

// QRCode is one physical scan point of a campaign. Code is the opaque printed
// secret; it is never serialized on user-facing listings.
type QRCode struct {
	ID                uint      `json:"id"`
	CampaignID        uint      `json:"campaign_id"`
	Code              string    `json:"-"`
	Number            int       `json:"number"`
	EstablishmentName string    `json:"establishment_name"`
	LocationHint      string    `json:"location_hint,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
