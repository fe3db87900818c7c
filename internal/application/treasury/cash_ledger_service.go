package treasury

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odalissj/OperacionPollitoPF/internal/application/audit"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ApplyMovementInput is a manual cash movement request. Amount is signed:
// positive credits the balance, negative debits it.
type ApplyMovementInput struct {
	Amount         decimal.Decimal
	MovementTypeID int64
	Description    string
	Actor          int64
}

// MovementResult reports a committed movement.
type MovementResult struct {
	LedgerEntryID   int64
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}

// BalanceSnapshot is the read-only state of the register.
type BalanceSnapshot struct {
	CashRegisterID int64
	Amount         decimal.Decimal
	Initialized    bool
}

// CashLedgerService owns the single cash balance. Every mutation locks the
// balance row, checks non-negativity, writes the new balance, and appends
// exactly one ledger entry, all inside one transaction. Reads go straight to
// the repositories without locking.
type CashLedgerService struct {
	scope         TransactionScope
	balances      treasury.CashBalanceRepository
	entries       treasury.LedgerEntryRepository
	movementTypes treasury.MovementTypeRepository
	recorder      audit.Recorder
	logger        *zap.Logger
}

// NewCashLedgerService creates a CashLedgerService.
func NewCashLedgerService(
	scope TransactionScope,
	balances treasury.CashBalanceRepository,
	entries treasury.LedgerEntryRepository,
	movementTypes treasury.MovementTypeRepository,
	recorder audit.Recorder,
	logger *zap.Logger,
) *CashLedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	return &CashLedgerService{
		scope:         scope,
		balances:      balances,
		entries:       entries,
		movementTypes: movementTypes,
		recorder:      recorder,
		logger:        logger,
	}
}

// ApplyMovement applies a signed manual movement to the balance.
func (s *CashLedgerService) ApplyMovement(ctx context.Context, input ApplyMovementInput) (*MovementResult, error) {
	if input.Amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Movement amount cannot be zero")
	}
	if input.Description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Movement description is required")
	}
	// The catalog is static; resolving outside the transaction keeps the
	// critical section as short as possible.
	movementType, err := s.movementTypes.FindByID(ctx, input.MovementTypeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
		}
		return nil, err
	}

	var result *MovementResult
	err = s.scope.Execute(ctx, func(repos Repos) error {
		result, err = ApplyToLedger(ctx, repos, input.Amount, movementType.ID, input.Description, input.Actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, input.Actor, result, input.Description)
	s.logger.Info("cash movement applied",
		zap.Int64("ledger_entry_id", result.LedgerEntryID),
		zap.String("movement_type", movementType.Code.String()),
		zap.String("amount", input.Amount.StringFixed(2)),
		zap.String("new_balance", result.NewBalance.StringFixed(2)),
	)
	return result, nil
}

// ApplyToLedger is the in-transaction core of every balance mutation: lock the
// balance row, apply the signed amount, persist the new balance, append the
// journal entry. Sales and donations reuse it inside their own transactions so
// that the mutation and their own writes commit as one unit.
func ApplyToLedger(ctx context.Context, repos Repos, amount decimal.Decimal, movementTypeID int64, description string, actor int64) (*MovementResult, error) {
	balance, err := repos.Balances().FindForUpdate(ctx, actor)
	if err != nil {
		return nil, err
	}
	previous := balance.Amount

	newBalance, err := balance.Apply(amount, actor)
	if err != nil {
		return nil, err
	}
	if err := repos.Balances().Save(ctx, balance); err != nil {
		return nil, fmt.Errorf("saving cash balance: %w", err)
	}

	entry, err := treasury.NewLedgerEntry(movementTypeID, amount, newBalance, description, actor)
	if err != nil {
		return nil, err
	}
	if err := repos.Entries().Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("appending ledger entry: %w", err)
	}

	return &MovementResult{
		LedgerEntryID:   entry.ID,
		PreviousBalance: previous,
		NewBalance:      newBalance,
	}, nil
}

// Balance returns the register state, defaulting to a zero snapshot when the
// row has never been initialized.
func (s *CashLedgerService) Balance(ctx context.Context) (*BalanceSnapshot, error) {
	balance, err := s.balances.Find(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &BalanceSnapshot{CashRegisterID: treasury.DefaultCashRegisterID, Amount: decimal.Zero}, nil
		}
		return nil, err
	}
	return &BalanceSnapshot{CashRegisterID: balance.ID, Amount: balance.Amount, Initialized: true}, nil
}

// Entries returns the full journal, newest first.
func (s *CashLedgerService) Entries(ctx context.Context) ([]treasury.LedgerEntry, error) {
	return s.entries.FindAll(ctx)
}

// EntryByID returns one journal entry.
func (s *CashLedgerService) EntryByID(ctx context.Context, id int64) (*treasury.LedgerEntry, error) {
	return s.entries.FindByID(ctx, id)
}

// RecentEntries returns the latest movements for the register.
func (s *CashLedgerService) RecentEntries(ctx context.Context, limit int) ([]treasury.LedgerEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.entries.FindRecent(ctx, limit)
}

// DailySummary sums today's income and expense.
func (s *CashLedgerService) DailySummary(ctx context.Context) (*treasury.DailySummary, error) {
	return s.entries.DailySummary(ctx, treasury.DefaultCashRegisterID)
}

// MovementTypes lists the transaction-type catalog.
func (s *CashLedgerService) MovementTypes(ctx context.Context) ([]treasury.MovementType, error) {
	return s.movementTypes.FindAll(ctx)
}

func (s *CashLedgerService) record(ctx context.Context, actor int64, result *MovementResult, description string) {
	event := audit.NewEvent(actor, audit.ActionMovement, "ledger_entries",
		fmt.Sprintf("%d", result.LedgerEntryID), description)
	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record activity event", zap.Error(err))
	}
}
