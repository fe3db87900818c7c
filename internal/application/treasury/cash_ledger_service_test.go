package treasury_test

import (
	"context"
	"testing"

	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCashLedgerService(store *testutil.MemoryStore) *treasuryapp.CashLedgerService {
	scope := testutil.TreasuryScope{Scope: testutil.NewScope(store)}
	return treasuryapp.NewCashLedgerService(
		scope, store.BalanceRepo(), store.EntryRepo(), store.TypeRepo(), nil, nil)
}

func TestApplyMovementCreditInitializesBalance(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newCashLedgerService(store)

	result, err := svc.ApplyMovement(context.Background(), treasuryapp.ApplyMovementInput{
		Amount:         decimal.NewFromFloat(100.00),
		MovementTypeID: 2,
		Description:    "Aporte inicial",
		Actor:          7,
	})
	require.NoError(t, err)

	assert.True(t, result.PreviousBalance.IsZero())
	assert.True(t, result.NewBalance.Equal(decimal.NewFromFloat(100.00)))

	require.NotNil(t, store.Balance)
	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(100.00)))
	assert.Equal(t, int64(7), store.Balance.UpdatedBy)

	require.Len(t, store.Entries, 1)
	entry := store.Entries[0]
	assert.Equal(t, int64(2), entry.MovementTypeID)
	assert.True(t, entry.ResultingBalance.Equal(result.NewBalance))
	assert.Equal(t, int64(treasury.DefaultCashRegisterID), entry.CashRegisterID)
}

func TestApplyMovementDebitBelowZeroRollsBack(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(50.00)
	svc := newCashLedgerService(store)

	_, err := svc.ApplyMovement(context.Background(), treasuryapp.ApplyMovementInput{
		Amount:         decimal.NewFromFloat(-80.00),
		MovementTypeID: 3,
		Description:    "Compra de alimento",
		Actor:          7,
	})
	require.ErrorIs(t, err, shared.ErrInsufficientFunds)

	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(50.00)))
	assert.Empty(t, store.Entries)
}

func TestApplyMovementValidation(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(50.00)
	svc := newCashLedgerService(store)

	tests := []struct {
		name  string
		input treasuryapp.ApplyMovementInput
		code  string
	}{
		{
			name: "zero amount",
			input: treasuryapp.ApplyMovementInput{
				Amount: decimal.Zero, MovementTypeID: 2, Description: "x", Actor: 1,
			},
			code: "INVALID_AMOUNT",
		},
		{
			name: "missing description",
			input: treasuryapp.ApplyMovementInput{
				Amount: decimal.NewFromInt(10), MovementTypeID: 2, Actor: 1,
			},
			code: "INVALID_DESCRIPTION",
		},
		{
			name: "unknown movement type",
			input: treasuryapp.ApplyMovementInput{
				Amount: decimal.NewFromInt(10), MovementTypeID: 99, Description: "x", Actor: 1,
			},
			code: "INVALID_MOVEMENT_TYPE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ApplyMovement(context.Background(), tt.input)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
			assert.Empty(t, store.Entries)
		})
	}
}

func TestApplyMovementLockTimeoutIsRetryable(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedBalance(50.00)
	store.LockErr = shared.ErrLockTimeout
	svc := newCashLedgerService(store)

	_, err := svc.ApplyMovement(context.Background(), treasuryapp.ApplyMovementInput{
		Amount:         decimal.NewFromInt(10),
		MovementTypeID: 2,
		Description:    "Aporte",
		Actor:          1,
	})
	require.ErrorIs(t, err, shared.ErrLockTimeout)
	assert.True(t, shared.IsRetryable(err))
	assert.True(t, store.Balance.Amount.Equal(decimal.NewFromFloat(50.00)))
}

func TestEveryMutationAppendsExactlyOneEntry(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newCashLedgerService(store)
	ctx := context.Background()

	movements := []struct {
		amount float64
		typeID int64
	}{
		{200.00, 1},
		{-35.50, 3},
		{65.00, 2},
		{-12.25, 3},
	}
	for _, m := range movements {
		_, err := svc.ApplyMovement(ctx, treasuryapp.ApplyMovementInput{
			Amount:         decimal.NewFromFloat(m.amount),
			MovementTypeID: m.typeID,
			Description:    "mov",
			Actor:          1,
		})
		require.NoError(t, err)
	}

	require.Len(t, store.Entries, len(movements))

	// Each entry's resulting balance must chain from the previous one.
	running := decimal.Zero
	for i, e := range store.Entries {
		running = running.Add(e.Amount)
		assert.True(t, e.ResultingBalance.Equal(running), "entry %d out of sequence", i)
	}
	assert.True(t, store.Balance.Amount.Equal(running))
}

func TestBalanceDefaultsToZeroWhenUninitialized(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newCashLedgerService(store)

	snapshot, err := svc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, snapshot.Amount.IsZero())
	assert.False(t, snapshot.Initialized)
	assert.Equal(t, int64(treasury.DefaultCashRegisterID), snapshot.CashRegisterID)
}

func TestRecentEntriesDefaultLimit(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newCashLedgerService(store)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := svc.ApplyMovement(ctx, treasuryapp.ApplyMovementInput{
			Amount:         decimal.NewFromInt(int64(i + 1)),
			MovementTypeID: 2,
			Description:    "mov",
			Actor:          1,
		})
		require.NoError(t, err)
	}

	recent, err := svc.RecentEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Newest first.
	assert.Greater(t, recent[0].ID, recent[4].ID)
}

func TestDailySummarySplitsIncomeAndExpense(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newCashLedgerService(store)
	ctx := context.Background()

	for _, amount := range []float64{100.00, -30.00, 50.00, -20.00} {
		typeID := int64(2)
		if amount < 0 {
			typeID = 3
		}
		_, err := svc.ApplyMovement(ctx, treasuryapp.ApplyMovementInput{
			Amount:         decimal.NewFromFloat(amount),
			MovementTypeID: typeID,
			Description:    "mov",
			Actor:          1,
		})
		require.NoError(t, err)
	}

	summary, err := svc.DailySummary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.IncomeToday.Equal(decimal.NewFromFloat(150.00)))
	assert.True(t, summary.ExpenseToday.Equal(decimal.NewFromFloat(50.00)))
}
