package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings holds the budget configuration for a user's household.
// It is always passed into use cases explicitly, never read from ambient
// state.
type Settings struct {
	UserID               uuid.UUID
	SavingsRate          decimal.Decimal // percent, 0-100
	SalaryDates          []int           // days of month, 1-31
	EnableSmartReserve   bool
	ManualReservedAmount decimal.Decimal
	ManualPaidExpenses   map[string][]uuid.UUID // month key "YYYY-MM" -> expense ids
	MandatoryExpenses    []*MandatoryExpense
	InitialBalance       decimal.Decimal
	InitialBalanceDate   time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DefaultSettings returns the settings a user starts with before any
// configuration.
func DefaultSettings(userID uuid.UUID) *Settings {
	now := time.Now().UTC()

	return &Settings{
		UserID:               userID,
		SavingsRate:          decimal.NewFromInt(10),
		SalaryDates:          []int{},
		EnableSmartReserve:   true,
		ManualReservedAmount: decimal.Zero,
		ManualPaidExpenses:   map[string][]uuid.UUID{},
		MandatoryExpenses:    []*MandatoryExpense{},
		InitialBalance:       decimal.Zero,
		InitialBalanceDate:   now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ManualPaidSet returns the set of manually flagged expense ids for the
// given month key.
func (s *Settings) ManualPaidSet(monthKey string) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{})
	if s.ManualPaidExpenses == nil {
		return set
	}
	for _, id := range s.ManualPaidExpenses[monthKey] {
		set[id] = struct{}{}
	}
	return set
}
