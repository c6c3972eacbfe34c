package domain

import "time"

// RaffleResult is the permanent record of one executed draw. Seed is kept so
// the draw can be replayed offline against the same entry pool for audit.
type RaffleResult struct {
	ID             uint           `json:"id"`
	CampaignID     uint           `json:"campaign_id"`
	CampaignName   string         `json:"campaign_name,omitempty"`
	Seed           int64          `json:"seed"`
	TotalEntrants  int            `json:"total_entrants"`
	ExecutedAt     time.Time      `json:"executed_at"`
	ExecutedBy     uint           `json:"executed_by"`
	Winners        []RaffleWinner `json:"winners"`
}

type RaffleWinner struct {
	UserID   uint `json:"user_id"`
	Position int  `json:"position"`
}

// RaffleEntrant is one member of a campaign's entry pool, in the
// deterministic order the draw consumes it.
type RaffleEntrant struct {
	UserID    uint      `json:"user_id"`
	EnteredAt time.Time `json:"entered_at"`
}
