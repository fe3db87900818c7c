package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, shared.ErrNotFound},
		{"pgx lock wait expiry", &pgconn.PgError{Code: "55P03"}, shared.ErrLockTimeout},
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, shared.ErrAlreadyExists},
		{"pq lock wait expiry", &pq.Error{Code: "55P03"}, shared.ErrLockTimeout},
		{"pq unique violation", &pq.Error{Code: "23505"}, shared.ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		unknown := errors.New("connection reset")
		assert.Equal(t, unknown, translateError(unknown))
	})

	t.Run("wrapped pgx errors still map", func(t *testing.T) {
		wrapped := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: "55P03"})
		got := translateError(wrapped)
		assert.ErrorIs(t, got, shared.ErrLockTimeout)
		assert.True(t, shared.IsRetryable(got))
	})
}
