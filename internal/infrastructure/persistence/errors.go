package persistence

import (
	"errors"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes this layer cares about.
const (
	pgLockNotAvailable = "55P03"
	pgUniqueViolation  = "23505"
)

// translateError maps driver errors onto the domain sentinels. Lock wait
// expiry surfaces as shared.ErrLockTimeout, which callers may retry since the
// transaction was rolled back without committing anything. The gorm postgres
// driver speaks pgx, so *pgconn.PgError is the type to match; *pq.Error is
// handled too for connections opened through lib/pq.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if sentinel := sqlStateSentinel(sqlState(err)); sentinel != nil {
		return sentinel
	}
	return err
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func sqlStateSentinel(code string) error {
	switch code {
	case pgLockNotAvailable:
		return shared.ErrLockTimeout
	case pgUniqueViolation:
		return shared.ErrAlreadyExists
	}
	return nil
}
