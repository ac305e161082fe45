package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// SettingsModel represents the budget_settings table. One row per user.
type SettingsModel struct {
	UserID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SavingsRate          decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	SalaryDates          pq.Int64Array   `gorm:"type:integer[]"`
	EnableSmartReserve   bool            `gorm:"not null;default:true"`
	ManualReservedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InitialBalance       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InitialBalanceDate   time.Time       `gorm:"not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "budget_settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity. The
// mandatory-expense list and manual paid flags are attached by the repository.
func (m *SettingsModel) ToEntity() *entity.Settings {
	salaryDates := make([]int, 0, len(m.SalaryDates))
	for _, d := range m.SalaryDates {
		salaryDates = append(salaryDates, int(d))
	}

	return &entity.Settings{
		UserID:               m.UserID,
		SavingsRate:          m.SavingsRate,
		SalaryDates:          salaryDates,
		EnableSmartReserve:   m.EnableSmartReserve,
		ManualReservedAmount: m.ManualReservedAmount,
		ManualPaidExpenses:   map[string][]uuid.UUID{},
		MandatoryExpenses:    []*entity.MandatoryExpense{},
		InitialBalance:       m.InitialBalance,
		InitialBalanceDate:   m.InitialBalanceDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	salaryDates := make(pq.Int64Array, len(settings.SalaryDates))
	for i, d := range settings.SalaryDates {
		salaryDates[i] = int64(d)
	}

	return &SettingsModel{
		UserID:               settings.UserID,
		SavingsRate:          settings.SavingsRate,
		SalaryDates:          salaryDates,
		EnableSmartReserve:   settings.EnableSmartReserve,
		ManualReservedAmount: settings.ManualReservedAmount,
		InitialBalance:       settings.InitialBalance,
		InitialBalanceDate:   settings.InitialBalanceDate,
		CreatedAt:            settings.CreatedAt,
		UpdatedAt:            settings.UpdatedAt,
	}
}

// MandatoryExpenseModel represents the mandatory_expenses table.
type MandatoryExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Day       int             `gorm:"not null"`
	Keywords  pq.StringArray  `gorm:"type:text[]"`
	MemberID  *uuid.UUID      `gorm:"type:uuid"`
	Remind    bool            `gorm:"not null;default:false"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MandatoryExpenseModel.
func (MandatoryExpenseModel) TableName() string {
	return "mandatory_expenses"
}

// ToEntity converts a MandatoryExpenseModel to a domain entity.
func (m *MandatoryExpenseModel) ToEntity() *entity.MandatoryExpense {
	return &entity.MandatoryExpense{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Day:       m.Day,
		Keywords:  []string(m.Keywords),
		MemberID:  m.MemberID,
		Remind:    m.Remind,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MandatoryExpenseFromEntity creates a MandatoryExpenseModel from a domain entity.
func MandatoryExpenseFromEntity(expense *entity.MandatoryExpense) *MandatoryExpenseModel {
	return &MandatoryExpenseModel{
		ID:        expense.ID,
		UserID:    expense.UserID,
		Name:      expense.Name,
		Amount:    expense.Amount,
		Day:       expense.Day,
		Keywords:  pq.StringArray(expense.Keywords),
		MemberID:  expense.MemberID,
		Remind:    expense.Remind,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}
