package override

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

func TestTogglePaidUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle takes effect in memory immediately", func(t *testing.T) {
		repo := newFakeOverrideRepository()
		store := NewStore(repo)
		uc := NewTogglePaidUseCase(store, repo, nil)

		userID := uuid.New()
		expenseID := uuid.New()

		output, err := uc.Execute(ctx, TogglePaidInput{
			UserID:    userID,
			ExpenseID: expenseID,
			MonthKey:  "2026-08",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.IsPaid {
			t.Error("expected first toggle to report paid")
		}

		set, err := store.ManualPaidSet(ctx, userID, "2026-08")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := set[expenseID]; !ok {
			t.Error("expected the flag to be readable right after the toggle")
		}
	})

	t.Run("invalid month key is rejected", func(t *testing.T) {
		repo := newFakeOverrideRepository()
		store := NewStore(repo)
		uc := NewTogglePaidUseCase(store, repo, nil)

		_, err := uc.Execute(ctx, TogglePaidInput{
			UserID:    uuid.New(),
			ExpenseID: uuid.New(),
			MonthKey:  "08-2026",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, domainerror.ErrInvalidMonthKey) {
			t.Errorf("expected invalid month key error, got %v", err)
		}
	})
}

func TestSetReserveUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve is replaced in memory immediately", func(t *testing.T) {
		repo := newFakeOverrideRepository()
		store := NewStore(repo)
		uc := NewSetReserveUseCase(store, repo, nil)

		userID := uuid.New()

		output, err := uc.Execute(ctx, SetReserveInput{
			UserID: userID,
			Amount: decimal.NewFromInt(2500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Amount.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected amount 2500, got %s", output.Amount)
		}

		reserve, err := store.ManualReserve(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reserve.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected stored reserve 2500, got %s", reserve)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		repo := newFakeOverrideRepository()
		store := NewStore(repo)
		uc := NewSetReserveUseCase(store, repo, nil)

		_, err := uc.Execute(ctx, SetReserveInput{
			UserID: uuid.New(),
			Amount: decimal.NewFromInt(-100),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, domainerror.ErrNegativeReserve) {
			t.Errorf("expected negative reserve error, got %v", err)
		}
	})
}
