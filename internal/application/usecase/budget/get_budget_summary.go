package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/override"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reconciliation"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reserve"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// defaultSummaryCacheTTL bounds how long a computed summary may be served
// from cache within a single day. Mutations invalidate explicitly; the key
// also carries the date, so a cached entry never survives a date rollover.
const defaultSummaryCacheTTL = 5 * time.Minute

// GetBudgetSummaryInput represents the input for the budget summary.
type GetBudgetSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// ExpenseStatusView is one reconciled mandatory expense in the summary.
type ExpenseStatusView struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Day             int             `json:"day"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	IsAutoPaid      bool            `json:"is_auto_paid"`
	IsManuallyPaid  bool            `json:"is_manually_paid"`
	IsPaid          bool            `json:"is_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	IsOverdue       bool            `json:"is_overdue"`
}

// ReserveView is the reserve breakdown in the summary.
type ReserveView struct {
	SavingsAmount        decimal.Decimal `json:"savings_amount"`
	UnpaidMandatoryTotal decimal.Decimal `json:"unpaid_mandatory_total"`
	ManualReservedAmount decimal.Decimal `json:"manual_reserved_amount"`
	TotalReserved        decimal.Decimal `json:"total_reserved"`
	AvailableBalance     decimal.Decimal `json:"available_balance"`
}

// DailyBudgetView is the safe daily spend in the summary.
type DailyBudgetView struct {
	Amount          decimal.Decimal `json:"amount"`
	DaysUntilSalary int             `json:"days_until_salary"`
	NextSalaryDate  time.Time       `json:"next_salary_date"`
}

// GetBudgetSummaryOutput is the full budget summary for one user and day.
type GetBudgetSummaryOutput struct {
	MonthKey    string              `json:"month_key"`
	Balance     decimal.Decimal     `json:"balance"`
	Expenses    []ExpenseStatusView `json:"expenses"`
	Reserve     ReserveView         `json:"reserve"`
	DailyBudget DailyBudgetView     `json:"daily_budget"`
}

// GetBudgetSummaryUseCase wires the engine end to end: load settings and the
// month's expense transactions, take the precomputed balance, reconcile,
// compose the reserve and derive the daily budget.
type GetBudgetSummaryUseCase struct {
	settingsRepo adapter.SettingsRepository
	txRepo       adapter.TransactionRepository
	overrides    *override.Store
	cache        adapter.SummaryCache
	reconcileUC  *reconciliation.ReconcileExpensesUseCase
	composeUC    *reserve.ComposeReserveUseCase
	dailyUC      *DailyBudgetUseCase
	cacheTTL     time.Duration
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(
	settingsRepo adapter.SettingsRepository,
	txRepo adapter.TransactionRepository,
	overrides *override.Store,
	cache adapter.SummaryCache,
	reconcileUC *reconciliation.ReconcileExpensesUseCase,
	composeUC *reserve.ComposeReserveUseCase,
	dailyUC *DailyBudgetUseCase,
	cacheTTL time.Duration,
) *GetBudgetSummaryUseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultSummaryCacheTTL
	}
	return &GetBudgetSummaryUseCase{
		settingsRepo: settingsRepo,
		txRepo:       txRepo,
		overrides:    overrides,
		cache:        cache,
		reconcileUC:  reconcileUC,
		composeUC:    composeUC,
		dailyUC:      dailyUC,
		cacheTTL:     cacheTTL,
	}
}

// Execute computes (or serves from cache) the budget summary.
func (uc *GetBudgetSummaryUseCase) Execute(
	ctx context.Context,
	input GetBudgetSummaryInput,
) (*GetBudgetSummaryOutput, error) {
	day := input.Now.Format("2006-01-02")

	if uc.cache != nil {
		if payload, ok, err := uc.cache.Get(ctx, input.UserID, day); err != nil {
			slog.Warn("Budget summary cache read failed", "user_id", input.UserID, "error", err)
		} else if ok {
			var cached GetBudgetSummaryOutput
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			slog.Warn("Discarding unreadable cached budget summary", "user_id", input.UserID)
		}
	}

	output, err := uc.compute(ctx, input)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(output); err == nil {
			if err := uc.cache.Set(ctx, input.UserID, day, payload, uc.cacheTTL); err != nil {
				slog.Warn("Budget summary cache write failed", "user_id", input.UserID, "error", err)
			}
		}
	}

	return output, nil
}

func (uc *GetBudgetSummaryUseCase) compute(
	ctx context.Context,
	input GetBudgetSummaryInput,
) (*GetBudgetSummaryOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingsNotFound) {
			settings = entity.DefaultSettings(input.UserID)
		} else {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	ledger, err := uc.txRepo.LedgerSum(ctx, input.UserID, settings.InitialBalanceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum ledger: %w", err)
	}
	balance := settings.InitialBalance.Add(ledger)

	expenseType := entity.TransactionTypeExpense
	monthTransactions, err := uc.txRepo.FindByMonth(ctx, input.UserID, input.Now, &expenseType)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	monthKey := valueobject.MonthKeyFor(input.Now)

	manualPaid, err := uc.overrides.ManualPaidSet(ctx, input.UserID, monthKey.String())
	if err != nil {
		return nil, fmt.Errorf("failed to read manual paid flags: %w", err)
	}
	manualReserve, err := uc.overrides.ManualReserve(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read manual reserve: %w", err)
	}

	reconciled, err := uc.reconcileUC.Execute(ctx, reconciliation.ReconcileExpensesInput{
		Expenses:     settings.MandatoryExpenses,
		Transactions: monthTransactions,
		ManualPaid:   manualPaid,
		Now:          input.Now,
	})
	if err != nil {
		return nil, err
	}

	composed, err := uc.composeUC.Execute(ctx, reserve.ComposeReserveInput{
		Balance:            balance,
		SavingsRate:        settings.SavingsRate,
		Reconciled:         reconciled.Expenses,
		ManualReserve:      manualReserve,
		EnableSmartReserve: settings.EnableSmartReserve,
	})
	if err != nil {
		return nil, err
	}

	daily, err := uc.dailyUC.Execute(ctx, DailyBudgetInput{
		AvailableBalance: composed.Reserve.AvailableBalance,
		SalaryDates:      settings.SalaryDates,
		Now:              input.Now,
	})
	if err != nil {
		return nil, err
	}

	expenses := make([]ExpenseStatusView, 0, len(reconciled.Expenses))
	for _, re := range reconciled.Expenses {
		expenses = append(expenses, ExpenseStatusView{
			ID:              re.Expense.ID,
			Name:            re.Expense.Name,
			Amount:          re.Expense.Amount,
			Day:             re.Expense.Day,
			PaidAmount:      re.PaidAmount,
			IsAutoPaid:      re.IsAutoPaid,
			IsManuallyPaid:  re.IsManuallyPaid,
			IsPaid:          re.IsPaid,
			RemainingAmount: re.RemainingAmount,
			IsOverdue:       re.IsOverdue,
		})
	}

	return &GetBudgetSummaryOutput{
		MonthKey: monthKey.String(),
		Balance:  balance,
		Expenses: expenses,
		Reserve: ReserveView{
			SavingsAmount:        composed.Reserve.SavingsAmount,
			UnpaidMandatoryTotal: composed.Reserve.UnpaidMandatoryTotal,
			ManualReservedAmount: composed.Reserve.ManualReservedAmount,
			TotalReserved:        composed.Reserve.TotalReserved,
			AvailableBalance:     composed.Reserve.AvailableBalance,
		},
		DailyBudget: DailyBudgetView{
			Amount:          daily.Budget.Amount,
			DaysUntilSalary: daily.Budget.DaysUntilSalary,
			NextSalaryDate:  daily.Budget.NextSalaryDate,
		},
	}, nil
}
