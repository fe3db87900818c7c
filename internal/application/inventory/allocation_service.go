package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odalissj/OperacionPollitoPF/internal/application/audit"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"go.uber.org/zap"
)

// AllocateInput requests a transfer of units from the general pool to a
// beneficiary.
type AllocateInput struct {
	BeneficiaryID int64
	Quantity      int64
	Actor         int64
}

// AllocationResult reports a committed allocation.
type AllocationResult struct {
	GeneralRemaining    int64
	BeneficiaryNewTotal int64
}

// AllocationService transfers stock from the general pool into per-beneficiary
// holdings. The pool decrement and the holding increment happen in one
// transaction; the holding is created lazily on first allocation.
type AllocationService struct {
	scope         TransactionScope
	general       inventory.GeneralStockRepository
	beneficiaries inventory.BeneficiaryStockRepository
	recorder      audit.Recorder
	logger        *zap.Logger
}

// NewAllocationService creates an AllocationService.
func NewAllocationService(
	scope TransactionScope,
	general inventory.GeneralStockRepository,
	beneficiaries inventory.BeneficiaryStockRepository,
	recorder audit.Recorder,
	logger *zap.Logger,
) *AllocationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	return &AllocationService{
		scope:         scope,
		general:       general,
		beneficiaries: beneficiaries,
		recorder:      recorder,
		logger:        logger,
	}
}

// Allocate moves quantity units from the general pool to the beneficiary.
func (s *AllocationService) Allocate(ctx context.Context, input AllocateInput) (*AllocationResult, error) {
	if input.BeneficiaryID <= 0 {
		return nil, shared.NewDomainError("INVALID_BENEFICIARY", "Beneficiary ID is required")
	}
	if input.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	var result *AllocationResult
	err := s.scope.Execute(ctx, func(repos Repos) error {
		pool, err := repos.General().FindForUpdate(ctx, input.Actor)
		if err != nil {
			return err
		}
		if err := pool.Withdraw(input.Quantity, input.Actor); err != nil {
			return err
		}
		if err := repos.General().Save(ctx, pool); err != nil {
			return fmt.Errorf("saving general stock: %w", err)
		}

		holding, err := repos.Beneficiaries().FindByBeneficiaryForUpdate(ctx, input.BeneficiaryID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			holding, err = inventory.NewBeneficiaryStock(input.BeneficiaryID, input.Quantity, input.Actor)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := holding.Receive(input.Quantity, input.Actor); err != nil {
				return err
			}
		}
		if err := repos.Beneficiaries().Save(ctx, holding); err != nil {
			return fmt.Errorf("saving beneficiary stock: %w", err)
		}

		result = &AllocationResult{
			GeneralRemaining:    pool.CurrentQuantity,
			BeneficiaryNewTotal: holding.CurrentQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, input)
	s.logger.Info("stock allocated",
		zap.Int64("beneficiary_id", input.BeneficiaryID),
		zap.Int64("quantity", input.Quantity),
		zap.Int64("general_remaining", result.GeneralRemaining),
	)
	return result, nil
}

// Initialize creates a zeroed holding for a beneficiary ahead of any
// allocation. Returns shared.ErrAlreadyExists when the holding is present.
func (s *AllocationService) Initialize(ctx context.Context, beneficiaryID, actor int64) (*inventory.BeneficiaryStock, error) {
	if _, err := s.beneficiaries.FindByBeneficiary(ctx, beneficiaryID); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	holding, err := inventory.NewEmptyBeneficiaryStock(beneficiaryID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.beneficiaries.Save(ctx, holding); err != nil {
		return nil, fmt.Errorf("saving beneficiary stock: %w", err)
	}
	return holding, nil
}

// GeneralSnapshot returns the pool state, zeroed when never initialized.
func (s *AllocationService) GeneralSnapshot(ctx context.Context) (*inventory.GeneralStock, error) {
	pool, err := s.general.Find(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &inventory.GeneralStock{ID: inventory.DefaultGeneralStockID}, nil
		}
		return nil, err
	}
	return pool, nil
}

// BeneficiarySnapshot returns one holding, zeroed when the beneficiary has
// never received an allocation.
func (s *AllocationService) BeneficiarySnapshot(ctx context.Context, beneficiaryID int64) (*inventory.BeneficiaryStock, error) {
	holding, err := s.beneficiaries.FindByBeneficiary(ctx, beneficiaryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &inventory.BeneficiaryStock{BeneficiaryID: beneficiaryID}, nil
		}
		return nil, err
	}
	return holding, nil
}

// List returns every beneficiary holding.
func (s *AllocationService) List(ctx context.Context) ([]inventory.BeneficiaryStock, error) {
	return s.beneficiaries.FindAll(ctx)
}

func (s *AllocationService) record(ctx context.Context, input AllocateInput) {
	event := audit.NewEvent(input.Actor, audit.ActionAllocation, "beneficiary_stock",
		fmt.Sprintf("%d", input.BeneficiaryID),
		fmt.Sprintf("Entrega de %d unidades al beneficiario %d", input.Quantity, input.BeneficiaryID))
	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record activity event", zap.Error(err))
	}
}
