package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombdereus/gimcana-api/internal/domain"
)

func poolOf(n int) []domain.RaffleEntrant {
	entrants := make([]domain.RaffleEntrant, n)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range entrants {
		entrants[i] = domain.RaffleEntrant{
			UserID:    uint(i + 1),
			EnteredAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	return entrants
}

func TestDrawWinners_Deterministic(t *testing.T) {
	pool := poolOf(20)

	first := DrawWinners(1234, pool, 3)
	replay := DrawWinners(1234, pool, 3)

	assert.Equal(t, first, replay, "same seed and pool must reproduce the draw")
}

func TestDrawWinners_SeedChangesOutcome(t *testing.T) {
	pool := poolOf(50)

	a := DrawWinners(1, pool, 5)
	b := DrawWinners(2, pool, 5)

	assert.NotEqual(t, a, b)
}

func TestDrawWinners_DistinctWinnersFromPool(t *testing.T) {
	pool := poolOf(10)

	winners := DrawWinners(99, pool, 4)
	require.Len(t, winners, 4)

	seen := make(map[uint]bool)
	for i, winner := range winners {
		assert.Equal(t, i+1, winner.Position)
		assert.False(t, seen[winner.UserID], "winner drawn twice")
		seen[winner.UserID] = true
		assert.GreaterOrEqual(t, winner.UserID, uint(1))
		assert.LessOrEqual(t, winner.UserID, uint(10))
	}
}

func TestDrawWinners_CappedAtPoolSize(t *testing.T) {
	pool := poolOf(2)

	winners := DrawWinners(7, pool, 10)
	assert.Len(t, winners, 2)
}

func TestDrawWinners_EmptyPool(t *testing.T) {
	assert.Nil(t, DrawWinners(7, nil, 3))
	assert.Nil(t, DrawWinners(7, poolOf(5), 0))
}

func TestNewRaffleSeed(t *testing.T) {
	a, err := newRaffleSeed()
	require.NoError(t, err)
	b, err := newRaffleSeed()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerateQRCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateQRCode()
		require.NoError(t, err)
		assert.Regexp(t, `^GIMCANA-[0-9A-F]{16}$`, code)
		assert.False(t, seen[code], "generated code collided")
		seen[code] = true
	}
}
