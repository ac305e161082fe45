package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MandatoryExpense represents a recurring expected bill with a target amount
// and a monthly due day. The canonical list is user-managed and lives in
// Settings.
type MandatoryExpense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal // expected monthly figure
	Day       int             // due day of month, 1-31
	Keywords  []string        // match strings for transaction notes
	MemberID  *uuid.UUID      // optional owner within the household
	Remind    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMandatoryExpense creates a new MandatoryExpense entity.
func NewMandatoryExpense(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	day int,
	keywords []string,
	memberID *uuid.UUID,
	remind bool,
) *MandatoryExpense {
	now := time.Now().UTC()

	return &MandatoryExpense{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Day:       day,
		Keywords:  keywords,
		MemberID:  memberID,
		Remind:    remind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
