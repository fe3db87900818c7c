package donation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDonation(t *testing.T) {
	t.Run("valid donation", func(t *testing.T) {
		d, err := NewDonation(4, decimal.NewFromFloat(120.00), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(4), d.DonorID)
		assert.True(t, d.Amount.Equal(decimal.NewFromFloat(120.00)))
		assert.Equal(t, int64(1), d.EnteredBy)
	})

	t.Run("rejects missing donor", func(t *testing.T) {
		_, err := NewDonation(0, decimal.NewFromFloat(10), 1)
		require.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewDonation(4, decimal.Zero, 1)
		require.Error(t, err)
		_, err = NewDonation(4, decimal.NewFromFloat(-3), 1)
		require.Error(t, err)
	})
}
