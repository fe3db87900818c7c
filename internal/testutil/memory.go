// Package testutil provides in-memory repository implementations with
// transactional (snapshot/rollback) semantics for application-level tests.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
)

// MemoryStore holds all engine state in memory. Repositories returned by its
// accessor methods read and write this state directly; the scope adapters in
// scopes.go add rollback-on-error semantics so atomicity is observable in
// tests.
type MemoryStore struct {
	Balance   *treasury.CashBalance
	Entries   []treasury.LedgerEntry
	Types     []treasury.MovementType
	General   *inventory.GeneralStock
	Holdings  map[int64]*inventory.BeneficiaryStock
	Sales     []sales.Sale
	Donations []donation.Donation

	// LockErr, when set, is returned by every FindForUpdate to simulate a
	// row-lock wait timeout.
	LockErr error

	nextEntryID    int64
	nextHoldingID  int64
	nextSaleID     int64
	nextDonationID int64
}

// NewMemoryStore creates a store seeded with the movement-type catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Types: []treasury.MovementType{
			{ID: 1, Code: treasury.MovementDonation, Description: "Donación"},
			{ID: 2, Code: treasury.MovementCredit, Description: "Crédito"},
			{ID: 3, Code: treasury.MovementDebit, Description: "Débito"},
		},
		Holdings: map[int64]*inventory.BeneficiaryStock{},
	}
}

// SeedBalance initializes the cash balance row.
func (s *MemoryStore) SeedBalance(amount float64) {
	s.Balance = &treasury.CashBalance{
		ID:        treasury.DefaultCashRegisterID,
		Amount:    decimal.NewFromFloat(amount),
		UpdatedAt: time.Now(),
		UpdatedBy: 1,
	}
}

// SeedGeneral initializes the general stock pool.
func (s *MemoryStore) SeedGeneral(quantity int64) {
	s.General = &inventory.GeneralStock{
		ID:                 inventory.DefaultGeneralStockID,
		CurrentQuantity:    quantity,
		LastIntakeQuantity: quantity,
		EnteredAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

// SeedHolding initializes a beneficiary holding.
func (s *MemoryStore) SeedHolding(beneficiaryID, quantity int64) {
	s.nextHoldingID++
	s.Holdings[beneficiaryID] = &inventory.BeneficiaryStock{
		ID:                 s.nextHoldingID,
		BeneficiaryID:      beneficiaryID,
		CurrentQuantity:    quantity,
		LastIntakeQuantity: quantity,
		TotalValue:         decimal.Zero,
		EnteredAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

// snapshot deep-copies all mutable state.
func (s *MemoryStore) snapshot() *MemoryStore {
	cp := *s
	if s.Balance != nil {
		b := *s.Balance
		cp.Balance = &b
	}
	if s.General != nil {
		g := *s.General
		cp.General = &g
	}
	cp.Entries = append([]treasury.LedgerEntry(nil), s.Entries...)
	cp.Sales = make([]sales.Sale, len(s.Sales))
	for i, sale := range s.Sales {
		cp.Sales[i] = sale
		cp.Sales[i].Lines = append([]sales.SaleLine(nil), sale.Lines...)
	}
	cp.Donations = append([]donation.Donation(nil), s.Donations...)
	cp.Holdings = make(map[int64]*inventory.BeneficiaryStock, len(s.Holdings))
	for k, v := range s.Holdings {
		h := *v
		cp.Holdings[k] = &h
	}
	return &cp
}

// restore puts back a previously taken snapshot.
func (s *MemoryStore) restore(snap *MemoryStore) {
	*s = *snap
}

// ---- treasury repositories ----

type memBalanceRepo struct{ store *MemoryStore }

// Balances returns the in-memory cash balance repository.
func (s *MemoryStore) BalanceRepo() treasury.CashBalanceRepository { return memBalanceRepo{s} }

func (r memBalanceRepo) Find(context.Context) (*treasury.CashBalance, error) {
	if r.store.Balance == nil {
		return nil, shared.ErrNotFound
	}
	b := *r.store.Balance
	return &b, nil
}

func (r memBalanceRepo) FindForUpdate(_ context.Context, actor int64) (*treasury.CashBalance, error) {
	if r.store.LockErr != nil {
		return nil, r.store.LockErr
	}
	if r.store.Balance == nil {
		r.store.Balance = treasury.NewCashBalance(actor)
	}
	return r.store.Balance, nil
}

func (r memBalanceRepo) Save(_ context.Context, balance *treasury.CashBalance) error {
	r.store.Balance = balance
	return nil
}

type memEntryRepo struct{ store *MemoryStore }

// Entries returns the in-memory ledger repository.
func (s *MemoryStore) EntryRepo() treasury.LedgerEntryRepository { return memEntryRepo{s} }

func (r memEntryRepo) Append(_ context.Context, entry *treasury.LedgerEntry) error {
	r.store.nextEntryID++
	entry.ID = r.store.nextEntryID
	r.store.Entries = append(r.store.Entries, *entry)
	return nil
}

func (r memEntryRepo) FindByID(_ context.Context, id int64) (*treasury.LedgerEntry, error) {
	for i := range r.store.Entries {
		if r.store.Entries[i].ID == id {
			e := r.store.Entries[i]
			return &e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memEntryRepo) FindAll(context.Context) ([]treasury.LedgerEntry, error) {
	out := append([]treasury.LedgerEntry(nil), r.store.Entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memEntryRepo) FindRecent(ctx context.Context, limit int) ([]treasury.LedgerEntry, error) {
	all, _ := r.FindAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r memEntryRepo) DailySummary(_ context.Context, cashRegisterID int64) (*treasury.DailySummary, error) {
	summary := &treasury.DailySummary{IncomeToday: decimal.Zero, ExpenseToday: decimal.Zero}
	today := time.Now().Truncate(24 * time.Hour)
	for _, e := range r.store.Entries {
		if e.CashRegisterID != cashRegisterID || e.EnteredAt.Before(today) {
			continue
		}
		if e.Amount.IsPositive() {
			summary.IncomeToday = summary.IncomeToday.Add(e.Amount)
		} else {
			summary.ExpenseToday = summary.ExpenseToday.Add(e.Amount.Neg())
		}
	}
	return summary, nil
}

type memTypeRepo struct{ store *MemoryStore }

// MovementTypes returns the in-memory movement-type catalog.
func (s *MemoryStore) TypeRepo() treasury.MovementTypeRepository { return memTypeRepo{s} }

func (r memTypeRepo) FindByID(_ context.Context, id int64) (*treasury.MovementType, error) {
	for i := range r.store.Types {
		if r.store.Types[i].ID == id {
			t := r.store.Types[i]
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memTypeRepo) FindByCode(_ context.Context, code treasury.MovementTypeCode) (*treasury.MovementType, error) {
	for i := range r.store.Types {
		if r.store.Types[i].Code == code {
			t := r.store.Types[i]
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memTypeRepo) FindAll(context.Context) ([]treasury.MovementType, error) {
	return append([]treasury.MovementType(nil), r.store.Types...), nil
}

// ---- inventory repositories ----

type memGeneralRepo struct{ store *MemoryStore }

// General returns the in-memory general stock repository.
func (s *MemoryStore) GeneralRepo() inventory.GeneralStockRepository { return memGeneralRepo{s} }

func (r memGeneralRepo) Find(context.Context) (*inventory.GeneralStock, error) {
	if r.store.General == nil {
		return nil, shared.ErrNotFound
	}
	g := *r.store.General
	return &g, nil
}

func (r memGeneralRepo) FindForUpdate(_ context.Context, actor int64) (*inventory.GeneralStock, error) {
	if r.store.LockErr != nil {
		return nil, r.store.LockErr
	}
	if r.store.General == nil {
		r.store.General = inventory.NewGeneralStock(actor)
	}
	return r.store.General, nil
}

func (r memGeneralRepo) Save(_ context.Context, stock *inventory.GeneralStock) error {
	r.store.General = stock
	return nil
}

type memHoldingRepo struct{ store *MemoryStore }

// Beneficiaries returns the in-memory beneficiary stock repository.
func (s *MemoryStore) HoldingRepo() inventory.BeneficiaryStockRepository { return memHoldingRepo{s} }

func (r memHoldingRepo) FindByBeneficiary(_ context.Context, beneficiaryID int64) (*inventory.BeneficiaryStock, error) {
	if h, ok := r.store.Holdings[beneficiaryID]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r memHoldingRepo) FindByBeneficiaryForUpdate(_ context.Context, beneficiaryID int64) (*inventory.BeneficiaryStock, error) {
	if r.store.LockErr != nil {
		return nil, r.store.LockErr
	}
	if h, ok := r.store.Holdings[beneficiaryID]; ok {
		return h, nil
	}
	return nil, shared.ErrNotFound
}

func (r memHoldingRepo) FindAll(context.Context) ([]inventory.BeneficiaryStock, error) {
	out := make([]inventory.BeneficiaryStock, 0, len(r.store.Holdings))
	for _, h := range r.store.Holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BeneficiaryID < out[j].BeneficiaryID })
	return out, nil
}

func (r memHoldingRepo) Save(_ context.Context, stock *inventory.BeneficiaryStock) error {
	if stock.ID == 0 {
		r.store.nextHoldingID++
		stock.ID = r.store.nextHoldingID
	}
	r.store.Holdings[stock.BeneficiaryID] = stock
	return nil
}

// ---- sales repository ----

type memSaleRepo struct{ store *MemoryStore }

// SaleRepo returns the in-memory sale repository.
func (s *MemoryStore) SaleRepo() sales.SaleRepository { return memSaleRepo{s} }

func (r memSaleRepo) Create(_ context.Context, sale *sales.Sale) error {
	r.store.nextSaleID++
	sale.ID = r.store.nextSaleID
	for i := range sale.Lines {
		sale.Lines[i].SaleID = sale.ID
	}
	cp := *sale
	cp.Lines = append([]sales.SaleLine(nil), sale.Lines...)
	r.store.Sales = append(r.store.Sales, cp)
	return nil
}

func (r memSaleRepo) FindByID(_ context.Context, id int64) (*sales.Sale, error) {
	for i := range r.store.Sales {
		if r.store.Sales[i].ID == id {
			cp := r.store.Sales[i]
			cp.Lines = nil
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memSaleRepo) FindByIDWithLines(_ context.Context, id int64) (*sales.Sale, error) {
	for i := range r.store.Sales {
		if r.store.Sales[i].ID == id {
			cp := r.store.Sales[i]
			cp.Lines = append([]sales.SaleLine(nil), r.store.Sales[i].Lines...)
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memSaleRepo) FindAll(context.Context) ([]sales.Sale, error) {
	out := append([]sales.Sale(nil), r.store.Sales...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ---- donation repository ----

type memDonationRepo struct{ store *MemoryStore }

// DonationRepo returns the in-memory donation repository.
func (s *MemoryStore) DonationRepo() donation.DonationRepository { return memDonationRepo{s} }

func (r memDonationRepo) Create(_ context.Context, d *donation.Donation) error {
	r.store.nextDonationID++
	d.ID = r.store.nextDonationID
	r.store.Donations = append(r.store.Donations, *d)
	return nil
}

func (r memDonationRepo) FindByID(_ context.Context, id int64) (*donation.Donation, error) {
	for i := range r.store.Donations {
		if r.store.Donations[i].ID == id {
			d := r.store.Donations[i]
			return &d, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memDonationRepo) FindAll(context.Context) ([]donation.Donation, error) {
	return append([]donation.Donation(nil), r.store.Donations...), nil
}

func (r memDonationRepo) Delete(_ context.Context, id int64) error {
	for i := range r.store.Donations {
		if r.store.Donations[i].ID == id {
			r.store.Donations = append(r.store.Donations[:i], r.store.Donations[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}
