package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Campaign{},
		&QRCode{},
		&ScanEvent{},
		&Completion{},
		&ClaimRecord{},
		&RaffleResult{},
		&RaffleWinner{},
	)
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// optionally on the named constraint. Postgres surfaces pgconn.PgError;
// other dialects are normalized by gorm's TranslateError.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return constraint == "" || strings.Contains(pgErr.Message, constraint)
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
