package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence/model"
)

// overrideRepository implements the adapter.OverrideRepository interface.
type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new override repository instance.
func NewOverrideRepository(db *gorm.DB) adapter.OverrideRepository {
	return &overrideRepository{
		db: db,
	}
}

// Load retrieves the persisted override state. A user without any overrides
// yields an empty state.
func (r *overrideRepository) Load(ctx context.Context, userID uuid.UUID) (*adapter.OverrideState, error) {
	state := &adapter.OverrideState{
		ManualPaid:    map[string][]uuid.UUID{},
		ManualReserve: decimal.Zero,
	}

	var flagModels []model.ManualPaidFlagModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&flagModels).Error; err != nil {
		return nil, err
	}
	for _, fm := range flagModels {
		state.ManualPaid[fm.MonthKey] = append(state.ManualPaid[fm.MonthKey], fm.ExpenseID)
	}

	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	} else {
		state.ManualReserve = settingsModel.ManualReservedAmount
	}

	return state, nil
}

// SetManualPaid records or clears one manual paid flag.
func (r *overrideRepository) SetManualPaid(
	ctx context.Context,
	userID uuid.UUID,
	monthKey string,
	expenseID uuid.UUID,
	paid bool,
) error {
	if !paid {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND month_key = ? AND expense_id = ?", userID, monthKey, expenseID).
			Delete(&model.ManualPaidFlagModel{}).Error
	}

	var flag model.ManualPaidFlagModel
	return r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ? AND expense_id = ?", userID, monthKey, expenseID).
		Attrs(model.ManualPaidFlagModel{
			UserID:    userID,
			MonthKey:  monthKey,
			ExpenseID: expenseID,
			CreatedAt: time.Now().UTC(),
		}).
		FirstOrCreate(&flag).Error
}

// SaveManualReserve replaces the manual reserve scalar, creating the
// settings row with defaults when it does not exist yet.
func (r *overrideRepository) SaveManualReserve(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
) error {
	result := r.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"manual_reserved_amount": amount,
			"updated_at":             time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	defaults := entity.DefaultSettings(userID)
	defaults.ManualReservedAmount = amount
	return r.db.WithContext(ctx).Create(model.SettingsFromEntity(defaults)).Error
}
