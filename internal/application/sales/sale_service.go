package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odalissj/OperacionPollitoPF/internal/application/audit"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordSaleInput is the full sale request. DeclaredTotal is what the caller
// claims the sale is worth; the service recomputes it from the lines and
// rejects a mismatch instead of trusting it.
type RecordSaleInput struct {
	BeneficiaryID int64
	Lines         []sales.LineInput
	DeclaredTotal decimal.Decimal
	Actor         int64
}

// SaleResult reports a committed sale.
type SaleResult struct {
	SaleID         int64
	TotalAmount    decimal.Decimal
	CashPortion    decimal.Decimal
	InventoryValue decimal.Decimal
}

// SaleService is the top-level sale workflow. One transaction covers the
// header insert, all lines, the beneficiary stock decrement, the cash balance
// update, and the journal append; any failure rolls everything back.
type SaleService struct {
	scope       TransactionScope
	sales       sales.SaleRepository
	types       treasury.MovementTypeRepository
	recorder    audit.Recorder
	cashPerUnit decimal.Decimal
	logger      *zap.Logger
}

// NewSaleService creates a SaleService. cashPerUnit is the per-unit cash
// contribution of the proceeds split; pass sales.DefaultCashPerUnit to keep
// the historical rule.
func NewSaleService(
	scope TransactionScope,
	saleRepo sales.SaleRepository,
	types treasury.MovementTypeRepository,
	recorder audit.Recorder,
	cashPerUnit decimal.Decimal,
	logger *zap.Logger,
) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	if !cashPerUnit.IsPositive() {
		cashPerUnit = sales.DefaultCashPerUnit
	}
	return &SaleService{
		scope:       scope,
		sales:       saleRepo,
		types:       types,
		recorder:    recorder,
		cashPerUnit: cashPerUnit,
		logger:      logger,
	}
}

// RecordSale records a sale for a beneficiary.
func (s *SaleService) RecordSale(ctx context.Context, input RecordSaleInput) (*SaleResult, error) {
	sale, err := sales.NewSale(input.BeneficiaryID, input.Lines, input.DeclaredTotal, input.Actor)
	if err != nil {
		return nil, err
	}
	split := sale.Split(s.cashPerUnit)

	// Catalog lookup stays outside the transaction; sale proceeds are booked
	// as credit movements.
	creditType, err := s.types.FindByCode(ctx, treasury.MovementCredit)
	if err != nil {
		return nil, fmt.Errorf("resolving credit movement type: %w", err)
	}

	var result *SaleResult
	err = s.scope.Execute(ctx, func(repos Repos) error {
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return fmt.Errorf("creating sale: %w", err)
		}

		holding, err := repos.Beneficiaries().FindByBeneficiaryForUpdate(ctx, sale.BeneficiaryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// No holding means no stock to sell from.
				return shared.ErrInsufficientStock
			}
			return err
		}
		if err := holding.Sell(sale.TotalQuantity(), split.InventoryValue, input.Actor); err != nil {
			return err
		}
		if err := repos.Beneficiaries().Save(ctx, holding); err != nil {
			return fmt.Errorf("saving beneficiary stock: %w", err)
		}

		description := fmt.Sprintf("Venta %d a beneficiario %d", sale.ID, sale.BeneficiaryID)
		if _, err := treasuryapp.ApplyToLedger(ctx, repos, split.Cash, creditType.ID, description, input.Actor); err != nil {
			return err
		}

		result = &SaleResult{
			SaleID:         sale.ID,
			TotalAmount:    sale.TotalAmount,
			CashPortion:    split.Cash,
			InventoryValue: split.InventoryValue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, input.Actor, result)
	s.logger.Info("sale recorded",
		zap.Int64("sale_id", result.SaleID),
		zap.Int64("beneficiary_id", input.BeneficiaryID),
		zap.String("total", result.TotalAmount.StringFixed(2)),
		zap.String("cash_portion", result.CashPortion.StringFixed(2)),
	)
	return result, nil
}

// FindAll returns every sale header, newest first.
func (s *SaleService) FindAll(ctx context.Context) ([]sales.Sale, error) {
	return s.sales.FindAll(ctx)
}

// FindWithLines returns one sale with its line items.
func (s *SaleService) FindWithLines(ctx context.Context, id int64) (*sales.Sale, error) {
	return s.sales.FindByIDWithLines(ctx, id)
}

func (s *SaleService) record(ctx context.Context, actor int64, result *SaleResult) {
	event := audit.NewEvent(actor, audit.ActionSale, "sales",
		fmt.Sprintf("%d", result.SaleID),
		fmt.Sprintf("Venta de Q%s", result.TotalAmount.StringFixed(2)))
	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record activity event", zap.Error(err))
	}
}
