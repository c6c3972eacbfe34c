package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCampaign_CreatesQRCodes(t *testing.T) {
	d := newTestDAO(t)

	campaign := seedCampaign(t, d, 5, "direct")
	require.NotZero(t, campaign.ID)
	require.Len(t, campaign.QRCodes, 5)

	qrCodes, err := d.FindQRCodesByCampaignID(context.Background(), campaign.ID)
	require.NoError(t, err)
	require.Len(t, qrCodes, 5)
	for i, qr := range qrCodes {
		assert.Equal(t, campaign.ID, qr.CampaignID)
		assert.Equal(t, i+1, qr.Number)
	}
}

func TestFindCampaignByID_NotFound(t *testing.T) {
	d := newTestDAO(t)

	_, err := d.FindCampaignByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestFindActiveCampaigns_FiltersByWindow(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seedCampaign(t, d, 1, "direct")

	expired, err := d.InsertCampaign(ctx, Campaign{
		Name:         "Campanya passada",
		TotalQRCodes: 1,
		StartDate:    now.Add(-48 * time.Hour),
		EndDate:      now.Add(-24 * time.Hour),
		PrizeType:    "direct",
		IsActive:     true,
	}, []QRCode{{Code: "GIMCANA-00000000000000AA", Number: 1, EstablishmentName: "Punt 1"}})
	require.NoError(t, err)

	disabled, err := d.InsertCampaign(ctx, Campaign{
		Name:         "Campanya pausada",
		TotalQRCodes: 1,
		StartDate:    now.Add(-24 * time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		PrizeType:    "direct",
		IsActive:     false,
	}, []QRCode{{Code: "GIMCANA-00000000000000BB", Number: 1, EstablishmentName: "Punt 1"}})
	require.NoError(t, err)

	active, err := d.FindActiveCampaigns(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.NotEqual(t, expired.ID, active[0].ID)
	assert.NotEqual(t, disabled.ID, active[0].ID)
}

func TestFindQRCodeByCode_ScopedToCampaign(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	first := seedCampaign(t, d, 1, "direct")
	second, err := d.InsertCampaign(ctx, Campaign{
		Name:         "Segona ruta",
		TotalQRCodes: 1,
		StartDate:    time.Now().UTC().Add(-time.Hour),
		EndDate:      time.Now().UTC().Add(time.Hour),
		PrizeType:    "direct",
		IsActive:     true,
	}, []QRCode{{Code: "GIMCANA-00000000000000CC", Number: 1, EstablishmentName: "Punt 1"}})
	require.NoError(t, err)

	qr, err := d.FindQRCodeByCode(ctx, first.ID, first.QRCodes[0].Code)
	require.NoError(t, err)
	assert.Equal(t, first.QRCodes[0].ID, qr.ID)

	// A valid code of another campaign reads as unknown.
	_, err = d.FindQRCodeByCode(ctx, second.ID, first.QRCodes[0].Code)
	assert.ErrorIs(t, err, ErrQRCodeNotFound)
}

func TestCountCampaignStats(t *testing.T) {
	d := newTestDAO(t)
	campaign := seedCampaign(t, d, 2, "direct")
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := d.RecordScan(ctx, 1, campaign.ID, campaign.QRCodes[0].ID, 2, now)
	require.NoError(t, err)
	_, err = d.RecordScan(ctx, 1, campaign.ID, campaign.QRCodes[1].ID, 2, now)
	require.NoError(t, err)
	_, err = d.RecordScan(ctx, 2, campaign.ID, campaign.QRCodes[0].ID, 2, now)
	require.NoError(t, err)

	participants, completed, err := d.CountCampaignStats(ctx, campaign.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, participants)
	assert.EqualValues(t, 1, completed)
}
