package persistence

import (
	"context"
	"fmt"
	"time"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	inventoryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/inventory"
	salesapp "github.com/Odalissj/OperacionPollitoPF/internal/application/sales"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"gorm.io/gorm"
)

// ScopeFactory builds per-domain transaction scopes over one database
// connection. On postgres every transaction starts with SET LOCAL
// lock_timeout so a blocked SELECT ... FOR UPDATE gives up after the
// configured wait instead of queueing forever; the failure maps to
// shared.ErrLockTimeout and the whole transaction rolls back.
type ScopeFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
	postgres    bool
}

// NewScopeFactory creates a ScopeFactory for the given database.
func NewScopeFactory(database *Database, lockTimeout time.Duration) *ScopeFactory {
	return &ScopeFactory{
		db:          database.DB,
		lockTimeout: lockTimeout,
		postgres:    database.IsPostgres(),
	}
}

func (f *ScopeFactory) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if f.postgres && f.lockTimeout > 0 {
			// SET LOCAL scopes the setting to this transaction only.
			stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", f.lockTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return fn(tx)
	})
	return translateError(err)
}

// txRepos exposes every repository bound to one open transaction, satisfying
// all per-domain Repos interfaces at once.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) Balances() treasury.CashBalanceRepository { return NewGormCashBalanceRepository(r.tx) }
func (r txRepos) Entries() treasury.LedgerEntryRepository  { return NewGormLedgerEntryRepository(r.tx) }
func (r txRepos) General() inventory.GeneralStockRepository {
	return NewGormGeneralStockRepository(r.tx)
}
func (r txRepos) Beneficiaries() inventory.BeneficiaryStockRepository {
	return NewGormBeneficiaryStockRepository(r.tx)
}
func (r txRepos) Sales() sales.SaleRepository             { return NewGormSaleRepository(r.tx) }
func (r txRepos) Donations() donation.DonationRepository  { return NewGormDonationRepository(r.tx) }

// TreasuryScope returns the transaction scope for cash movements.
func (f *ScopeFactory) TreasuryScope() treasuryapp.TransactionScope {
	return treasuryScope{f}
}

// InventoryScope returns the transaction scope for stock allocations.
func (f *ScopeFactory) InventoryScope() inventoryapp.TransactionScope {
	return inventoryScope{f}
}

// SalesScope returns the transaction scope for sales.
func (f *ScopeFactory) SalesScope() salesapp.TransactionScope {
	return salesScope{f}
}

// DonationScope returns the transaction scope for donations.
func (f *ScopeFactory) DonationScope() donationapp.TransactionScope {
	return donationScope{f}
}

type treasuryScope struct{ f *ScopeFactory }

func (s treasuryScope) Execute(ctx context.Context, fn func(treasuryapp.Repos) error) error {
	return s.f.transaction(ctx, func(tx *gorm.DB) error { return fn(txRepos{tx}) })
}

type inventoryScope struct{ f *ScopeFactory }

func (s inventoryScope) Execute(ctx context.Context, fn func(inventoryapp.Repos) error) error {
	return s.f.transaction(ctx, func(tx *gorm.DB) error { return fn(txRepos{tx}) })
}

type salesScope struct{ f *ScopeFactory }

func (s salesScope) Execute(ctx context.Context, fn func(salesapp.Repos) error) error {
	return s.f.transaction(ctx, func(tx *gorm.DB) error { return fn(txRepos{tx}) })
}

type donationScope struct{ f *ScopeFactory }

func (s donationScope) Execute(ctx context.Context, fn func(donationapp.Repos) error) error {
	return s.f.transaction(ctx, func(tx *gorm.DB) error { return fn(txRepos{tx}) })
}

var (
	_ treasuryapp.TransactionScope  = treasuryScope{}
	_ inventoryapp.TransactionScope = inventoryScope{}
	_ salesapp.TransactionScope     = salesScope{}
	_ donationapp.TransactionScope  = donationScope{}
)
