package testutil

import (
	"context"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	inventoryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/inventory"
	salesapp "github.com/Odalissj/OperacionPollitoPF/internal/application/sales"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
)

// memRepos exposes every repository over one MemoryStore, satisfying all
// per-domain Repos interfaces at once.
type memRepos struct{ store *MemoryStore }

func (r memRepos) Balances() treasury.CashBalanceRepository            { return r.store.BalanceRepo() }
func (r memRepos) Entries() treasury.LedgerEntryRepository             { return r.store.EntryRepo() }
func (r memRepos) General() inventory.GeneralStockRepository           { return r.store.GeneralRepo() }
func (r memRepos) Beneficiaries() inventory.BeneficiaryStockRepository { return r.store.HoldingRepo() }
func (r memRepos) Sales() sales.SaleRepository                         { return r.store.SaleRepo() }
func (r memRepos) Donations() donation.DonationRepository              { return r.store.DonationRepo() }

// Scope wraps a MemoryStore with rollback-on-error semantics: a snapshot is
// taken before each Execute and restored when fn fails, mirroring what a real
// database transaction guarantees.
type Scope struct{ Store *MemoryStore }

// NewScope creates a Scope over the given store.
func NewScope(store *MemoryStore) *Scope { return &Scope{Store: store} }

func (s *Scope) run(fn func(memRepos) error) error {
	snap := s.Store.snapshot()
	if err := fn(memRepos{s.Store}); err != nil {
		s.Store.restore(snap)
		return err
	}
	return nil
}

// TreasuryScope adapts the Scope to the treasury transaction interface.
type TreasuryScope struct{ *Scope }

// Execute runs fn against the store, rolling back on error.
func (s TreasuryScope) Execute(_ context.Context, fn func(treasuryapp.Repos) error) error {
	return s.run(func(r memRepos) error { return fn(r) })
}

// InventoryScope adapts the Scope to the inventory transaction interface.
type InventoryScope struct{ *Scope }

// Execute runs fn against the store, rolling back on error.
func (s InventoryScope) Execute(_ context.Context, fn func(inventoryapp.Repos) error) error {
	return s.run(func(r memRepos) error { return fn(r) })
}

// SalesScope adapts the Scope to the sales transaction interface.
type SalesScope struct{ *Scope }

// Execute runs fn against the store, rolling back on error.
func (s SalesScope) Execute(_ context.Context, fn func(salesapp.Repos) error) error {
	return s.run(func(r memRepos) error { return fn(r) })
}

// DonationScope adapts the Scope to the donation transaction interface.
type DonationScope struct{ *Scope }

// Execute runs fn against the store, rolling back on error.
func (s DonationScope) Execute(_ context.Context, fn func(donationapp.Repos) error) error {
	return s.run(func(r memRepos) error { return fn(r) })
}

var (
	_ treasuryapp.TransactionScope  = TreasuryScope{}
	_ inventoryapp.TransactionScope = InventoryScope{}
	_ salesapp.TransactionScope     = SalesScope{}
	_ donationapp.TransactionScope  = DonationScope{}
)
