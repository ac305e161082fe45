package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// fakeSettingsRepository is an in-memory adapter.SettingsRepository for tests.
type fakeSettingsRepository struct {
	settings map[uuid.UUID]*entity.Settings
	expenses map[uuid.UUID]*entity.MandatoryExpense
}

func newFakeSettingsRepository() *fakeSettingsRepository {
	return &fakeSettingsRepository{
		settings: make(map[uuid.UUID]*entity.Settings),
		expenses: make(map[uuid.UUID]*entity.MandatoryExpense),
	}
}

func (r *fakeSettingsRepository) Get(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	settings, ok := r.settings[userID]
	if !ok {
		return nil, domainerror.ErrSettingsNotFound
	}
	return settings, nil
}

func (r *fakeSettingsRepository) Save(_ context.Context, settings *entity.Settings) error {
	r.settings[settings.UserID] = settings
	return nil
}

func (r *fakeSettingsRepository) SaveMandatoryExpense(_ context.Context, expense *entity.MandatoryExpense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeSettingsRepository) DeleteMandatoryExpense(_ context.Context, id, userID uuid.UUID) error {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates settings on first update", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, nil)
		userID := uuid.New()

		output, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID:             userID,
			SavingsRate:        decimal.NewFromInt(15),
			SalaryDates:        []int{25, 10},
			EnableSmartReserve: true,
			InitialBalance:     decimal.NewFromInt(10000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Settings.SavingsRate.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected savings rate 15, got %s", output.Settings.SavingsRate)
		}
		if len(output.Settings.SalaryDates) != 2 || output.Settings.SalaryDates[0] != 10 {
			t.Errorf("expected sorted salary dates [10 25], got %v", output.Settings.SalaryDates)
		}
		if _, ok := repo.settings[userID]; !ok {
			t.Error("expected settings to be persisted")
		}
	})

	t.Run("salary dates are deduplicated", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, nil)

		output, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID:      uuid.New(),
			SalaryDates: []int{10, 10, 25},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Settings.SalaryDates) != 2 {
			t.Errorf("expected [10 25], got %v", output.Settings.SalaryDates)
		}
	})

	t.Run("out of range salary date is rejected", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, nil)

		_, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID:      uuid.New(),
			SalaryDates: []int{0},
		})
		if !errors.Is(err, domainerror.ErrInvalidSalaryDate) {
			t.Errorf("expected invalid salary date error, got %v", err)
		}

		_, err = uc.Execute(ctx, UpdateSettingsInput{
			UserID:      uuid.New(),
			SalaryDates: []int{32},
		})
		if !errors.Is(err, domainerror.ErrInvalidSalaryDate) {
			t.Errorf("expected invalid salary date error, got %v", err)
		}
	})

	t.Run("savings rate is clamped", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, nil)

		output, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID:      uuid.New(),
			SavingsRate: decimal.NewFromInt(140),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Settings.SavingsRate.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected clamped rate 100, got %s", output.Settings.SavingsRate)
		}
	})
}

func TestGetSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("missing settings are created with defaults", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewGetSettingsUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(ctx, GetSettingsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Settings.SavingsRate.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected default savings rate 10, got %s", output.Settings.SavingsRate)
		}
		if !output.Settings.EnableSmartReserve {
			t.Error("expected smart reserve enabled by default")
		}
		if _, ok := repo.settings[userID]; !ok {
			t.Error("expected defaults to be persisted")
		}
	})

	t.Run("existing settings are returned as stored", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		userID := uuid.New()
		repo.settings[userID] = &entity.Settings{
			UserID:      userID,
			SavingsRate: decimal.NewFromInt(20),
			SalaryDates: []int{5},
		}

		uc := NewGetSettingsUseCase(repo)
		output, err := uc.Execute(ctx, GetSettingsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Settings.SavingsRate.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected stored rate 20, got %s", output.Settings.SavingsRate)
		}
	})
}

func TestSaveMandatoryExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an expense with trimmed keywords", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewSaveMandatoryExpenseUseCase(repo, nil)

		output, err := uc.Execute(ctx, SaveMandatoryExpenseInput{
			UserID:   uuid.New(),
			Name:     "Rent",
			Amount:   decimal.NewFromInt(30000),
			Day:      5,
			Keywords: []string{" аренда ", "", "rent"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Expense.Keywords) != 2 {
			t.Errorf("expected 2 keywords, got %v", output.Expense.Keywords)
		}
		if output.Expense.Keywords[0] != "аренда" {
			t.Errorf("expected trimmed keyword, got %q", output.Expense.Keywords[0])
		}
		if _, ok := repo.expenses[output.Expense.ID]; !ok {
			t.Error("expected the expense to be persisted")
		}
	})

	t.Run("existing id updates in place", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewSaveMandatoryExpenseUseCase(repo, nil)
		id := uuid.New()

		output, err := uc.Execute(ctx, SaveMandatoryExpenseInput{
			UserID: uuid.New(),
			ID:     &id,
			Name:   "Internet",
			Amount: decimal.NewFromInt(900),
			Day:    10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.ID != id {
			t.Errorf("expected id %s to be kept, got %s", id, output.Expense.ID)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		uc := NewSaveMandatoryExpenseUseCase(newFakeSettingsRepository(), nil)

		_, err := uc.Execute(ctx, SaveMandatoryExpenseInput{
			UserID: uuid.New(),
			Name:   "   ",
			Amount: decimal.NewFromInt(100),
			Day:    1,
		})
		if !errors.Is(err, domainerror.ErrExpenseNameRequired) {
			t.Errorf("expected name required error, got %v", err)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		uc := NewSaveMandatoryExpenseUseCase(newFakeSettingsRepository(), nil)

		_, err := uc.Execute(ctx, SaveMandatoryExpenseInput{
			UserID: uuid.New(),
			Name:   "Rent",
			Amount: decimal.NewFromInt(-1),
			Day:    1,
		})
		if !errors.Is(err, domainerror.ErrNegativeExpenseAmount) {
			t.Errorf("expected negative amount error, got %v", err)
		}
	})

	t.Run("day out of range is rejected", func(t *testing.T) {
		uc := NewSaveMandatoryExpenseUseCase(newFakeSettingsRepository(), nil)

		_, err := uc.Execute(ctx, SaveMandatoryExpenseInput{
			UserID: uuid.New(),
			Name:   "Rent",
			Amount: decimal.NewFromInt(100),
			Day:    0,
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseDay) {
			t.Errorf("expected invalid day error, got %v", err)
		}
	})
}

func TestDeleteMandatoryExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an owned expense", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		userID := uuid.New()
		expense := entity.NewMandatoryExpense(userID, "Rent", decimal.NewFromInt(100), 1, nil, nil, false)
		repo.expenses[expense.ID] = expense

		uc := NewDeleteMandatoryExpenseUseCase(repo, nil)
		if err := uc.Execute(ctx, DeleteMandatoryExpenseInput{UserID: userID, ID: expense.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.expenses[expense.ID]; ok {
			t.Error("expected the expense to be removed")
		}
	})

	t.Run("missing expense returns not found", func(t *testing.T) {
		uc := NewDeleteMandatoryExpenseUseCase(newFakeSettingsRepository(), nil)

		err := uc.Execute(ctx, DeleteMandatoryExpenseInput{UserID: uuid.New(), ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
