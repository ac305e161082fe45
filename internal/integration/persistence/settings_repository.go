package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the full settings for a user: the scalar row, the
// mandatory-expense list and the persisted manual paid flags.
func (r *settingsRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}

	settings := settingsModel.ToEntity()

	var expenseModels []model.MandatoryExpenseModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC, name ASC").
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	for _, em := range expenseModels {
		settings.MandatoryExpenses = append(settings.MandatoryExpenses, em.ToEntity())
	}

	var flagModels []model.ManualPaidFlagModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&flagModels).Error; err != nil {
		return nil, err
	}
	for _, fm := range flagModels {
		settings.ManualPaidExpenses[fm.MonthKey] = append(settings.ManualPaidExpenses[fm.MonthKey], fm.ExpenseID)
	}

	return settings, nil
}

// Save upserts the scalar settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).Save(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SaveMandatoryExpense upserts one mandatory expense.
func (r *settingsRepository) SaveMandatoryExpense(ctx context.Context, expense *entity.MandatoryExpense) error {
	expenseModel := model.MandatoryExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteMandatoryExpense removes a mandatory expense with ownership
// verification, along with its manual paid flags.
func (r *settingsRepository) DeleteMandatoryExpense(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.MandatoryExpenseModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrExpenseNotFound
		}

		return tx.Where("user_id = ? AND expense_id = ?", userID, id).
			Delete(&model.ManualPaidFlagModel{}).Error
	})
}
