package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tombdereus/gimcana-api/internal/repository/dao"
)

// TestOpenPostgres_Integration runs the real scan transaction against a
// throwaway Postgres container. Set RUN_INTEGRATION_TEST=true to enable it.
func TestOpenPostgres_Integration(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TEST") != "true" {
		t.Skip("set RUN_INTEGRATION_TEST=true to run the dockerized Postgres test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=gimcana",
			"POSTGRES_PASSWORD=gimcana",
			"POSTGRES_DB=gimcana_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("pool.Purge -> %v", err)
		}
	})

	dsn := fmt.Sprintf(
		"postgres://gimcana:gimcana@%s/gimcana_test?sslmode=disable",
		resource.GetHostPort("5432/tcp"),
	)

	var gormDB *gorm.DB
	require.NoError(t, pool.Retry(func() error {
		var openErr error
		gormDB, openErr = OpenPostgresWithURL(dsn)

		return openErr
	}))

	d := dao.NewGimcanaDAO(gormDB)
	ctx := context.Background()
	now := time.Now().UTC()

	campaign, err := d.InsertCampaign(ctx, dao.Campaign{
		Name:         "Integration",
		TotalQRCodes: 1,
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(time.Hour),
		PrizeType:    "direct",
		NumWinners:   1,
		IsActive:     true,
	}, []dao.QRCode{{Code: "GIMCANA-0123456789ABCDEF", Number: 1, EstablishmentName: "Punt 1"}})
	require.NoError(t, err)

	record, err := d.RecordScan(ctx, 1, campaign.ID, campaign.QRCodes[0].ID, 1, now)
	require.NoError(t, err)
	assert.False(t, record.Duplicate)
	assert.True(t, record.Completed)
	assert.True(t, record.NewCompletion)

	// The Postgres unique index enforces the same idempotence sqlite shows.
	record, err = d.RecordScan(ctx, 1, campaign.ID, campaign.QRCodes[0].ID, 1, now)
	require.NoError(t, err)
	assert.True(t, record.Duplicate)
	assert.False(t, record.NewCompletion)
}
