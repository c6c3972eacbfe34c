package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRaffleResult_EffectivelyOnce(t *testing.T) {
	d := newTestDAO(t)
	campaign := seedCampaign(t, d, 1, "raffle")
	ctx := context.Background()

	first, already, err := d.InsertRaffleResult(ctx, RaffleResult{
		CampaignID:    campaign.ID,
		Seed:          42,
		TotalEntrants: 2,
		ExecutedAt:    time.Now().UTC(),
		ExecutedBy:    7,
	}, []RaffleWinner{{UserID: 1, Position: 1}})
	require.NoError(t, err)
	assert.False(t, already)
	require.Len(t, first.Winners, 1)

	// Second trigger loses on the unique index and is handed the first result.
	replay, already, err := d.InsertRaffleResult(ctx, RaffleResult{
		CampaignID:    campaign.ID,
		Seed:          99,
		TotalEntrants: 5,
		ExecutedAt:    time.Now().UTC(),
		ExecutedBy:    8,
	}, []RaffleWinner{{UserID: 2, Position: 1}})
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, first.ID, replay.ID)
	assert.EqualValues(t, 42, replay.Seed)
	require.Len(t, replay.Winners, 1)
	assert.Equal(t, uint(1), replay.Winners[0].UserID)

	stored, err := d.FindCampaignByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.True(t, stored.RaffleExecuted)
}

func TestFindRaffleResultByCampaignID_NotFound(t *testing.T) {
	d := newTestDAO(t)
	campaign := seedCampaign(t, d, 1, "raffle")

	_, err := d.FindRaffleResultByCampaignID(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, ErrRaffleResultNotFound)
}

func TestIsWinner(t *testing.T) {
	d := newTestDAO(t)
	campaign := seedCampaign(t, d, 1, "raffle")
	ctx := context.Background()

	// No draw yet: nobody is a winner, and that is not an error.
	isWinner, _, err := d.IsWinner(ctx, campaign.ID, 1)
	require.NoError(t, err)
	assert.False(t, isWinner)

	_, _, err = d.InsertRaffleResult(ctx, RaffleResult{
		CampaignID:    campaign.ID,
		Seed:          7,
		TotalEntrants: 3,
		ExecutedAt:    time.Now().UTC(),
	}, []RaffleWinner{{UserID: 1, Position: 1}, {UserID: 3, Position: 2}})
	require.NoError(t, err)

	isWinner, position, err := d.IsWinner(ctx, campaign.ID, 3)
	require.NoError(t, err)
	assert.True(t, isWinner)
	assert.Equal(t, 2, position)

	isWinner, _, err = d.IsWinner(ctx, campaign.ID, 2)
	require.NoError(t, err)
	assert.False(t, isWinner)
}

func TestFindAllRaffleResults_WinnersOrderedByPosition(t *testing.T) {
	d := newTestDAO(t)
	campaign := seedCampaign(t, d, 1, "raffle")
	ctx := context.Background()

	_, _, err := d.InsertRaffleResult(ctx, RaffleResult{
		CampaignID:    campaign.ID,
		Seed:          1,
		TotalEntrants: 3,
		ExecutedAt:    time.Now().UTC(),
	}, []RaffleWinner{{UserID: 5, Position: 2}, {UserID: 9, Position: 1}})
	require.NoError(t, err)

	results, err := d.FindAllRaffleResults(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Winners, 2)
	assert.Equal(t, 1, results[0].Winners[0].Position)
	assert.Equal(t, 2, results[0].Winners[1].Position)
}
