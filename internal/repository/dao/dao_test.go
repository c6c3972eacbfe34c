package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDAO opens a fresh in-memory database. The pool is pinned to a single
// connection so the memory database survives across queries and concurrent
// callers serialize the way a real server's transactions would.
func newTestDAO(t *testing.T) *GimcanaDAO {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, InitTables(db))

	return NewGimcanaDAO(db)
}

func seedCampaign(t *testing.T, d *GimcanaDAO, totalQRCodes int, prizeType string) Campaign {
	t.Helper()

	now := time.Now().UTC()
	qrCodes := make([]QRCode, totalQRCodes)
	for i := range qrCodes {
		qrCodes[i] = QRCode{
			Code:              fmt.Sprintf("GIMCANA-%016X", i+1),
			Number:            i + 1,
			EstablishmentName: fmt.Sprintf("Punt %d", i+1),
		}
	}

	raffleDate := now.Add(-time.Hour)
	campaign, err := d.InsertCampaign(context.Background(), Campaign{
		Name:         "Ruta de tapes",
		TotalQRCodes: totalQRCodes,
		StartDate:    now.Add(-24 * time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		PrizeType:    prizeType,
		RaffleDate:   &raffleDate,
		NumWinners:   1,
		IsActive:     true,
	}, qrCodes)
	require.NoError(t, err)

	return campaign
}
