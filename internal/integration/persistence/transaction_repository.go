// Package persistence implements repository interfaces for database operations.
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
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create stores a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID with ownership verification.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var txModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return txModel.ToEntity(), nil
}

// FindByMonth retrieves the user's transactions for the month containing the
// given date, optionally narrowed by type.
func (r *transactionRepository) FindByMonth(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
	transactionType *entity.TransactionType,
) ([]*entity.Transaction, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, monthStart, nextMonth)
	if transactionType != nil {
		query = query.Where("type = ?", string(*transactionType))
	}

	var txModels []model.TransactionModel
	if err := query.Order("date ASC").Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i, tm := range txModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// List retrieves transactions for a user ordered by date descending.
func (r *transactionRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) (*entity.TransactionListResult, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var txModels []model.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i, tm := range txModels {
		transactions[i] = tm.ToEntity()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// LedgerSum computes the signed transaction sum in SQL. The budget engine
// receives this as a precomputed figure.
func (r *transactionRepository) LedgerSum(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)").
		Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("date >= ?", since)
	}

	var total decimal.Decimal
	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
