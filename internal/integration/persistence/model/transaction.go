// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	MemberID        *uuid.UUID      `gorm:"type:uuid;index"`
	Date            time.Time       `gorm:"not null;index"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category        string          `gorm:"type:varchar(100)"`
	Note            string          `gorm:"type:text"`
	RawNote         string          `gorm:"type:text"`
	LinkedExpenseID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		MemberID:        m.MemberID,
		Date:            m.Date,
		Type:            entity.TransactionType(m.Type),
		Amount:          m.Amount,
		Category:        m.Category,
		Note:            m.Note,
		RawNote:         m.RawNote,
		LinkedExpenseID: m.LinkedExpenseID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		MemberID:        transaction.MemberID,
		Date:            transaction.Date,
		Type:            string(transaction.Type),
		Amount:          transaction.Amount,
		Category:        transaction.Category,
		Note:            transaction.Note,
		RawNote:         transaction.RawNote,
		LinkedExpenseID: transaction.LinkedExpenseID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
