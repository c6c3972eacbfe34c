package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScanEvent is one append-only ledger entry. The unique index on
// (user_id, qr_id) is the source of truth for duplicate detection; rows are
// never updated or deleted.
type ScanEvent struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uix_gimcana_scan_user_qr"`
	QRID       uint      `gorm:"not null;uniqueIndex:uix_gimcana_scan_user_qr"`
	CampaignID uint      `gorm:"not null;index"`
	ScannedAt  time.Time `gorm:"not null"`
}

func (ScanEvent) TableName() string {
	return "gimcana_scan_events"
}

// Completion marks the instant a user's scanned set reached full size. The
// unique index makes the incomplete-to-complete transition observable exactly
// once and freezes completed_at.
type Completion struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uix_gimcana_completion_user_campaign"`
	CampaignID  uint      `gorm:"not null;uniqueIndex:uix_gimcana_completion_user_campaign"`
	CompletedAt time.Time `gorm:"not null"`
}

func (Completion) TableName() string {
	return "gimcana_completions"
}

type ClaimRecord struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uix_gimcana_claim_user_campaign"`
	CampaignID uint      `gorm:"not null;uniqueIndex:uix_gimcana_claim_user_campaign"`
	Kind       string    `gorm:"not null"` // "direct_claim" or "raffle_entry"
	CreatedAt  time.Time `gorm:"not null"`
}

func (ClaimRecord) TableName() string {
	return "gimcana_claims"
}

// ScanRecord is the transactional outcome of RecordScan.
type ScanRecord struct {
	Duplicate     bool
	ScannedCount  int
	Completed     bool
	NewCompletion bool
	CompletedAt   *time.Time
}

// RecordScan appends a scan event and recomputes completion in a single
// transaction. The insert is insert-or-ignore on (user_id, qr_id), never a
// read-then-write pair, so concurrent duplicate submissions collapse into one
// row. When the distinct-scan count reaches totalQRCodes the completion row
// is inserted the same way; only the request whose insert takes effect
// reports NewCompletion.
func (d *GimcanaDAO) RecordScan(ctx context.Context, userID, campaignID, qrID uint, totalQRCodes int, now time.Time) (ScanRecord, error) {
	var record ScanRecord

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Under READ COMMITTED, two scans of distinct QRs closing the same
		// set can each count before the other commits and both skip the
		// completion insert. The advisory lock serializes count-and-complete
		// per (user, campaign); it releases on commit or rollback.
		if tx.Dialector.Name() == "postgres" {
			err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", int32(userID), int32(campaignID)).Error
			if err != nil {
				return err
			}
		}

		event := ScanEvent{
			UserID:     userID,
			QRID:       qrID,
			CampaignID: campaignID,
			ScannedAt:  now,
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "qr_id"}},
			DoNothing: true,
		}).Create(&event)
		if result.Error != nil {
			if !isUniqueViolation(result.Error, "uix_gimcana_scan_user_qr") {
				return result.Error
			}
			record.Duplicate = true
		} else {
			record.Duplicate = result.RowsAffected == 0
		}

		var count int64
		result = tx.Model(&ScanEvent{}).
			Where("user_id = ? AND campaign_id = ?", userID, campaignID).
			Count(&count)
		if result.Error != nil {
			return result.Error
		}

		record.ScannedCount = int(count)
		record.Completed = record.ScannedCount >= totalQRCodes

		if !record.Completed {
			return nil
		}

		completion := Completion{
			UserID:      userID,
			CampaignID:  campaignID,
			CompletedAt: now,
		}
		result = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "campaign_id"}},
			DoNothing: true,
		}).Create(&completion)
		if result.Error != nil {
			if !isUniqueViolation(result.Error, "uix_gimcana_completion_user_campaign") {
				return result.Error
			}
		} else if result.RowsAffected == 1 {
			// A duplicate submission can still backfill a missing completion
			// row, but only a fresh closing scan reports it as new.
			record.NewCompletion = !record.Duplicate
			record.CompletedAt = &completion.CompletedAt

			return nil
		}

		var existing Completion
		result = tx.Where("user_id = ? AND campaign_id = ?", userID, campaignID).First(&existing)
		if result.Error != nil {
			return result.Error
		}
		record.CompletedAt = &existing.CompletedAt

		return nil
	})
	if err != nil {
		return ScanRecord{}, err
	}

	return record, nil
}

func (d *GimcanaDAO) FindScanEvents(ctx context.Context, userID, campaignID uint) ([]ScanEvent, error) {
	var events []ScanEvent

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		Order("scanned_at ASC, id ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *GimcanaDAO) FindCompletion(ctx context.Context, userID, campaignID uint) (Completion, bool, error) {
	var completion Completion

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		First(&completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Completion{}, false, nil
		}

		return Completion{}, false, result.Error
	}

	return completion, true, nil
}

// InsertCompletion records the completion row at most once per
// (user, campaign). Readers that observe a full scan set without the row
// call this to backfill it; a concurrent writer winning the insert is fine,
// the existing row wins and its timestamp is returned.
func (d *GimcanaDAO) InsertCompletion(ctx context.Context, userID, campaignID uint, completedAt time.Time) (Completion, error) {
	completion := Completion{
		UserID:      userID,
		CampaignID:  campaignID,
		CompletedAt: completedAt,
	}
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "campaign_id"}},
		DoNothing: true,
	}).Create(&completion)
	if result.Error != nil && !isUniqueViolation(result.Error, "uix_gimcana_completion_user_campaign") {
		return Completion{}, result.Error
	}

	if result.Error == nil && result.RowsAffected == 1 {
		return completion, nil
	}

	var existing Completion
	result = d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		First(&existing)
	if result.Error != nil {
		return Completion{}, result.Error
	}

	return existing, nil
}

// InsertClaim records a claim at most once per (user, campaign). A losing
// concurrent request, or a replay, observes the conflict and degrades to
// reading the existing row: the second return value reports that path.
func (d *GimcanaDAO) InsertClaim(ctx context.Context, claim ClaimRecord) (ClaimRecord, bool, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "campaign_id"}},
		DoNothing: true,
	}).Create(&claim)
	if result.Error != nil && !isUniqueViolation(result.Error, "uix_gimcana_claim_user_campaign") {
		return ClaimRecord{}, false, result.Error
	}

	if result.Error == nil && result.RowsAffected == 1 {
		return claim, false, nil
	}

	var existing ClaimRecord
	result = d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", claim.UserID, claim.CampaignID).
		First(&existing)
	if result.Error != nil {
		return ClaimRecord{}, false, result.Error
	}

	return existing, true, nil
}

func (d *GimcanaDAO) FindClaim(ctx context.Context, userID, campaignID uint) (ClaimRecord, bool, error) {
	var claim ClaimRecord

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		First(&claim)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ClaimRecord{}, false, nil
		}

		return ClaimRecord{}, false, result.Error
	}

	return claim, true, nil
}

// ParticipantRow is one row of the admin participants listing.
type ParticipantRow struct {
	UserID       uint
	ScannedCount int
	Completed    bool
	CompletedAt  *time.Time
	Claimed      bool
	ClaimKind    string
	ClaimedAt    *time.Time
	FirstScanAt  time.Time
}

// FindParticipants aggregates the ledger per user for a campaign, most scans
// first.
func (d *GimcanaDAO) FindParticipants(ctx context.Context, campaignID uint) ([]ParticipantRow, error) {
	type scanAgg struct {
		UserID       uint
		ScannedCount int
		FirstScanAt  time.Time
	}

	var aggs []scanAgg
	result := d.db.WithContext(ctx).
		Model(&ScanEvent{}).
		Select("user_id, COUNT(*) AS scanned_count, MIN(scanned_at) AS first_scan_at").
		Where("campaign_id = ?", campaignID).
		Group("user_id").
		Order("scanned_count DESC").
		Scan(&aggs)
	if result.Error != nil {
		return nil, result.Error
	}

	var completions []Completion
	result = d.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Find(&completions)
	if result.Error != nil {
		return nil, result.Error
	}
	completedBy := make(map[uint]Completion, len(completions))
	for _, c := range completions {
		completedBy[c.UserID] = c
	}

	var claims []ClaimRecord
	result = d.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Find(&claims)
	if result.Error != nil {
		return nil, result.Error
	}
	claimedBy := make(map[uint]ClaimRecord, len(claims))
	for _, c := range claims {
		claimedBy[c.UserID] = c
	}

	rows := make([]ParticipantRow, len(aggs))
	for i, agg := range aggs {
		row := ParticipantRow{
			UserID:       agg.UserID,
			ScannedCount: agg.ScannedCount,
			FirstScanAt:  agg.FirstScanAt,
		}
		if completion, ok := completedBy[agg.UserID]; ok {
			row.Completed = true
			completedAt := completion.CompletedAt
			row.CompletedAt = &completedAt
		}
		if claim, ok := claimedBy[agg.UserID]; ok {
			row.Claimed = true
			row.ClaimKind = claim.Kind
			claimedAt := claim.CreatedAt
			row.ClaimedAt = &claimedAt
		}
		rows[i] = row
	}

	return rows, nil
}

// FindRaffleEntrants returns the deduplicated entry pool in deterministic
// order (claim time, then id) so a recorded seed replays to the same winners.
func (d *GimcanaDAO) FindRaffleEntrants(ctx context.Context, campaignID uint) ([]ClaimRecord, error) {
	var entrants []ClaimRecord

	result := d.db.WithContext(ctx).
		Where("campaign_id = ? AND kind = ?", campaignID, "raffle_entry").
		Order("created_at ASC, id ASC").
		Find(&entrants)
	if result.Error != nil {
		return nil, result.Error
	}

	return entrants, nil
}
