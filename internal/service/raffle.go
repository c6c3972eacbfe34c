package service

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"

	"github.com/tombdereus/gimcana-api/internal/domain"
)

// DrawWinners selects numWinners distinct winners from the entry pool,
// without replacement, assigning positions 1..K in draw order. The draw is a
// pure function of (seed, pool order): replaying it offline with the seed and
// entrant list recorded on the RaffleResult reproduces the exact outcome.
func DrawWinners(seed int64, entrants []domain.RaffleEntrant, numWinners int) []domain.RaffleWinner {
	if numWinners > len(entrants) {
		numWinners = len(entrants)
	}
	if numWinners <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(entrants))

	winners := make([]domain.RaffleWinner, numWinners)
	for i := 0; i < numWinners; i++ {
		winners[i] = domain.RaffleWinner{
			UserID:   entrants[perm[i]].UserID,
			Position: i + 1,
		}
	}

	return winners
}

// newRaffleSeed draws a fresh seed from the OS entropy source. The seed is
// persisted with the result so the draw stays auditable.
func newRaffleSeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("crypto/rand.Read -> %w", err)
	}

	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// generateQRCode produces one printable, opaque code. Codes are uppercase so
// they survive careless manual entry.
func generateQRCode() (string, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("crypto/rand.Read -> %w", err)
	}

	return "GIMCANA-" + strings.ToUpper(hex.EncodeToString(buf[:])), nil
}
