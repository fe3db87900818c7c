package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCashBalanceRepository implements CashBalanceRepository using GORM
type GormCashBalanceRepository struct {
	db *gorm.DB
}

// NewGormCashBalanceRepository creates a new GormCashBalanceRepository
func NewGormCashBalanceRepository(db *gorm.DB) *GormCashBalanceRepository {
	return &GormCashBalanceRepository{db: db}
}

// Find returns the balance row without locking it.
func (r *GormCashBalanceRepository) Find(ctx context.Context) (*treasury.CashBalance, error) {
	var balance treasury.CashBalance
	if err := r.db.WithContext(ctx).
		First(&balance, "id = ?", treasury.DefaultCashRegisterID).Error; err != nil {
		return nil, translateError(err)
	}
	return &balance, nil
}

// FindForUpdate locks the balance row with SELECT ... FOR UPDATE, creating it
// at zero on first use. Must run inside a transaction; the lock is held until
// commit or rollback.
func (r *GormCashBalanceRepository) FindForUpdate(ctx context.Context, actor int64) (*treasury.CashBalance, error) {
	var balance treasury.CashBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "id = ?", treasury.DefaultCashRegisterID).Error
	if err == nil {
		return &balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateError(err)
	}

	fresh := treasury.NewCashBalance(actor)
	if err := r.db.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, translateError(err)
	}
	return fresh, nil
}

// Save persists the mutated balance.
func (r *GormCashBalanceRepository) Save(ctx context.Context, balance *treasury.CashBalance) error {
	return translateError(r.db.WithContext(ctx).Save(balance).Error)
}

// GormLedgerEntryRepository implements LedgerEntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// Append inserts a new journal entry. Entries are never updated or deleted.
func (r *GormLedgerEntryRepository) Append(ctx context.Context, entry *treasury.LedgerEntry) error {
	return translateError(r.db.WithContext(ctx).Create(entry).Error)
}

// FindByID returns one journal entry.
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id int64) (*treasury.LedgerEntry, error) {
	var entry treasury.LedgerEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &entry, nil
}

// FindAll returns the full journal, newest first.
func (r *GormLedgerEntryRepository) FindAll(ctx context.Context) ([]treasury.LedgerEntry, error) {
	var entries []treasury.LedgerEntry
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// FindRecent returns the latest limit entries, newest first.
func (r *GormLedgerEntryRepository) FindRecent(ctx context.Context, limit int) ([]treasury.LedgerEntry, error) {
	var entries []treasury.LedgerEntry
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// DailySummary sums today's income and expense for one register. Income is
// the sum of positive amounts, expense the absolute sum of negative ones.
func (r *GormLedgerEntryRepository) DailySummary(ctx context.Context, cashRegisterID int64) (*treasury.DailySummary, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var row struct {
		Income  decimal.Decimal
		Expense decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&treasury.LedgerEntry{}).
		Select(
			"COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS expense").
		Where("cash_register_id = ? AND entered_at >= ?", cashRegisterID, startOfDay).
		Scan(&row).Error
	if err != nil {
		return nil, translateError(err)
	}

	return &treasury.DailySummary{
		IncomeToday:  row.Income,
		ExpenseToday: row.Expense,
	}, nil
}

// GormMovementTypeRepository implements MovementTypeRepository using GORM
type GormMovementTypeRepository struct {
	db *gorm.DB
}

// NewGormMovementTypeRepository creates a new GormMovementTypeRepository
func NewGormMovementTypeRepository(db *gorm.DB) *GormMovementTypeRepository {
	return &GormMovementTypeRepository{db: db}
}

// FindByID returns one catalog row.
func (r *GormMovementTypeRepository) FindByID(ctx context.Context, id int64) (*treasury.MovementType, error) {
	var movementType treasury.MovementType
	if err := r.db.WithContext(ctx).First(&movementType, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &movementType, nil
}

// FindByCode returns the catalog row for a code.
func (r *GormMovementTypeRepository) FindByCode(ctx context.Context, code treasury.MovementTypeCode) (*treasury.MovementType, error) {
	var movementType treasury.MovementType
	if err := r.db.WithContext(ctx).First(&movementType, "code = ?", code).Error; err != nil {
		return nil, translateError(err)
	}
	return &movementType, nil
}

// FindAll returns the whole catalog.
func (r *GormMovementTypeRepository) FindAll(ctx context.Context) ([]treasury.MovementType, error) {
	var types []treasury.MovementType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, translateError(err)
	}
	return types, nil
}

var (
	_ treasury.CashBalanceRepository  = (*GormCashBalanceRepository)(nil)
	_ treasury.LedgerEntryRepository  = (*GormLedgerEntryRepository)(nil)
	_ treasury.MovementTypeRepository = (*GormMovementTypeRepository)(nil)
)
