package donation_test

import (
	"context"
	"testing"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonationService(store *testutil.MemoryStore) *donationapp.DonationService {
	scope := testutil.DonationScope{Scope: testutil.NewScope(store)}
	return donationapp.NewDonationService(
		scope, store.DonationRepo(), store.TypeRepo(), nil, nil)
}

func TestCreateDonationCreditsBalance(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(25.00)
	svc := newDonationService(store)

	record, err := svc.Create(context.Background(), donationapp.CreateInput{
		DonorID: 3,
		Amount:  decimal.NewFromFloat(200.00),
		Actor:   7,
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)

	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(225.00)))
	require.Len(t, store.Entries, 1)
	// Donation movements book under the DON catalog type.
	assert.Equal(t, int64(1), store.Entries[0].MovementTypeID)
	assert.True(t, store.Entries[0].Amount.Equal(decimal.NewFromFloat(200.00)))
	require.Len(t, store.Donations, 1)
}

func TestCreateDonationRejectsNonPositiveAmount(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newDonationService(store)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-5.00)} {
		_, err := svc.Create(context.Background(), donationapp.CreateInput{
			DonorID: 3,
			Amount:  amount,
			Actor:   7,
		})
		require.Error(t, err)
	}
	assert.Empty(t, store.Donations)
	assert.Empty(t, store.Entries)
}

func TestCreateDonationLockTimeoutRollsBack(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(25.00)
	store.LockErr = shared.ErrLockTimeout
	svc := newDonationService(store)

	_, err := svc.Create(context.Background(), donationapp.CreateInput{
		DonorID: 3,
		Amount:  decimal.NewFromFloat(200.00),
		Actor:   7,
	})
	require.ErrorIs(t, err, shared.ErrLockTimeout)

	// The donation insert happened before the lock attempt; the rollback
	// must remove it.
	assert.Empty(t, store.Donations)
	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(25.00)))
}

func TestDeleteDonationKeepsLedgerEntry(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(0)
	svc := newDonationService(store)
	ctx := context.Background()

	record, err := svc.Create(ctx, donationapp.CreateInput{
		DonorID: 3,
		Amount:  decimal.NewFromFloat(50.00),
		Actor:   7,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))
	assert.Empty(t, store.Donations)
	// Removing the record does not rewrite history.
	assert.Len(t, store.Entries, 1)
	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(50.00)))

	require.ErrorIs(t, svc.Delete(ctx, record.ID), shared.ErrNotFound)
}
