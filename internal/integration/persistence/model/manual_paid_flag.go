package model

import (
	"time"

	"github.com/google/uuid"
)

// ManualPaidFlagModel represents the manual_paid_flags table: one row per
// manually flagged expense per month. A new month simply has no rows yet,
// which is how flags reset on month rollover.
type ManualPaidFlagModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_manual_paid_flag,priority:1"`
	MonthKey  string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_manual_paid_flag,priority:2"`
	ExpenseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_manual_paid_flag,priority:3"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ManualPaidFlagModel.
func (ManualPaidFlagModel) TableName() string {
	return "manual_paid_flags"
}
