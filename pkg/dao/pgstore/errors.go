package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrInvalidTable             = errors.New("invalid table definition")
	ErrUnknownColumn            = errors.New("unknown column")
)

// isInvalidKey reports whether the server rejected the key value itself:
// invalid text representation (22P02) or numeric value out of range (22003).
func isInvalidKey(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "22P02" || pgErr.Code == "22003"
}
