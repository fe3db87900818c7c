package donation

import (
	"context"
	"fmt"

	"github.com/Odalissj/OperacionPollitoPF/internal/application/audit"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateInput registers a donation.
type CreateInput struct {
	DonorID int64
	Amount  decimal.Decimal
	Actor   int64
}

// DonationService registers donations. A donation credits the cash balance
// with a donation-type ledger entry in the same transaction that stores the
// donation record.
type DonationService struct {
	scope     TransactionScope
	donations donation.DonationRepository
	types     treasury.MovementTypeRepository
	recorder  audit.Recorder
	logger    *zap.Logger
}

// NewDonationService creates a DonationService.
func NewDonationService(
	scope TransactionScope,
	donations donation.DonationRepository,
	types treasury.MovementTypeRepository,
	recorder audit.Recorder,
	logger *zap.Logger,
) *DonationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	return &DonationService{
		scope:     scope,
		donations: donations,
		types:     types,
		recorder:  recorder,
		logger:    logger,
	}
}

// Create stores the donation and credits the cash balance atomically.
func (s *DonationService) Create(ctx context.Context, input CreateInput) (*donation.Donation, error) {
	record, err := donation.NewDonation(input.DonorID, input.Amount, input.Actor)
	if err != nil {
		return nil, err
	}

	donationType, err := s.types.FindByCode(ctx, treasury.MovementDonation)
	if err != nil {
		return nil, fmt.Errorf("resolving donation movement type: %w", err)
	}

	err = s.scope.Execute(ctx, func(repos Repos) error {
		if err := repos.Donations().Create(ctx, record); err != nil {
			return fmt.Errorf("creating donation: %w", err)
		}
		description := fmt.Sprintf("Donación %d de donante %d", record.ID, record.DonorID)
		_, err := treasuryapp.ApplyToLedger(ctx, repos, record.Amount, donationType.ID, description, input.Actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := audit.NewEvent(input.Actor, audit.ActionDonation, "donations",
		fmt.Sprintf("%d", record.ID),
		fmt.Sprintf("Donación de Q%s", record.Amount.StringFixed(2)))
	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record activity event", zap.Error(err))
	}

	s.logger.Info("donation registered",
		zap.Int64("donation_id", record.ID),
		zap.Int64("donor_id", record.DonorID),
		zap.String("amount", record.Amount.StringFixed(2)),
	)
	return record, nil
}

// FindByID returns one donation.
func (s *DonationService) FindByID(ctx context.Context, id int64) (*donation.Donation, error) {
	return s.donations.FindByID(ctx, id)
}

// FindAll returns every donation.
func (s *DonationService) FindAll(ctx context.Context) ([]donation.Donation, error) {
	return s.donations.FindAll(ctx)
}

// Delete removes a donation record. The ledger entry it produced stays.
func (s *DonationService) Delete(ctx context.Context, id int64) error {
	return s.donations.Delete(ctx, id)
}
