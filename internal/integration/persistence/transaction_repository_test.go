// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence/model"
)

// openTestDB opens an isolated in-memory database and migrates the models
// the repositories under test touch. The pq array columns in the settings
// and expense models keep those tables Postgres-only, so settings repository
// coverage lives in the integration environment instead.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.TransactionModel{},
		&model.ManualPaidFlagModel{},
		&model.SettingsModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func storeTx(t *testing.T, db *gorm.DB, userID uuid.UUID, txType entity.TransactionType, amount int64, note string, date time.Time) *entity.Transaction {
	t.Helper()

	tx := entity.NewTransaction(userID, nil, date, txType, decimal.NewFromInt(amount), "", note, "", nil)
	if err := NewTransactionRepository(db).Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to store transaction: %v", err)
	}
	return tx
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	august := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Create and FindByID round trip", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		created := storeTx(t, db, userID, entity.TransactionTypeExpense, 2500, "groceries", august)

		found, err := repo.FindByID(ctx, created.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Amount.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected amount 2500, got %s", found.Amount)
		}
		if found.Note != "groceries" {
			t.Errorf("expected note groceries, got %s", found.Note)
		}
	})

	t.Run("FindByID enforces ownership", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		created := storeTx(t, db, userID, entity.TransactionTypeExpense, 100, "coffee", august)

		_, err := repo.FindByID(ctx, created.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected not found for another user, got %v", err)
		}
	})

	t.Run("FindByMonth scopes to the calendar month and type", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		storeTx(t, db, userID, entity.TransactionTypeExpense, 100, "in month", august)
		storeTx(t, db, userID, entity.TransactionTypeIncome, 50000, "salary", august)
		storeTx(t, db, userID, entity.TransactionTypeExpense, 200, "last month", august.AddDate(0, -1, 0))
		storeTx(t, db, uuid.New(), entity.TransactionTypeExpense, 300, "other user", august)

		expenseType := entity.TransactionTypeExpense
		transactions, err := repo.FindByMonth(ctx, userID, august, &expenseType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("expected one expense in the month, got %d", len(transactions))
		}
		if transactions[0].Note != "in month" {
			t.Errorf("unexpected transaction %s", transactions[0].Note)
		}

		all, err := repo.FindByMonth(ctx, userID, august, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected two transactions without a type filter, got %d", len(all))
		}
	})

	t.Run("LedgerSum signs income positive and expense negative", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		storeTx(t, db, userID, entity.TransactionTypeIncome, 50000, "salary", august)
		storeTx(t, db, userID, entity.TransactionTypeExpense, 30000, "rent", august)
		storeTx(t, db, userID, entity.TransactionTypeExpense, 5000, "groceries", august)

		sum, err := repo.LedgerSum(ctx, userID, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected ledger sum 15000, got %s", sum)
		}
	})

	t.Run("LedgerSum honours the since bound", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		storeTx(t, db, userID, entity.TransactionTypeExpense, 10000, "before", august.AddDate(0, -2, 0))
		storeTx(t, db, userID, entity.TransactionTypeIncome, 40000, "after", august)

		since := august.AddDate(0, -1, 0)
		sum, err := repo.LedgerSum(ctx, userID, since)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected only post-since income 40000, got %s", sum)
		}
	})

	t.Run("LedgerSum of an empty ledger is zero", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)

		sum, err := repo.LedgerSum(ctx, uuid.New(), time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.IsZero() {
			t.Errorf("expected zero, got %s", sum)
		}
	})

	t.Run("List pages newest first with a total", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		for i := 0; i < 5; i++ {
			storeTx(t, db, userID, entity.TransactionTypeExpense, int64(100+i), "tx", august.AddDate(0, 0, i))
		}

		result, err := repo.List(ctx, userID, 2, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 5 {
			t.Errorf("expected total 5, got %d", result.Total)
		}
		if len(result.Transactions) != 2 {
			t.Fatalf("expected page of 2, got %d", len(result.Transactions))
		}
		if !result.Transactions[0].Date.After(result.Transactions[1].Date) {
			t.Error("expected newest-first ordering")
		}
	})
}
