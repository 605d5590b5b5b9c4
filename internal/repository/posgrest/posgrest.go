package posgrest

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/starcoin-app/payment-core/internal/models"
)

// repository is the GORM-backed payment store. Lookups that miss return
// (nil, nil) so callers decide how absence maps into their error taxonomy.
type repository struct {
	db *gorm.DB
}

// New creates a payment repository on the provided GORM connection.
func New(db *gorm.DB) *repository {
	return &repository{
		db,
	}
}

// Create inserts a new payment record.
func (r *repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(&payment).Error
}

// GetByTransactionID retrieves a payment by its external transaction
// reference. Returns (nil, nil) when no record exists.
func (r *repository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByUser retrieves a user's payments ordered newest first. A limit of zero
// returns the full history.
func (r *repository) GetByUser(ctx context.Context, userID string, limit int) (*[]models.Payment, error) {
	var payments []models.Payment
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return &payments, nil
}

// GetActivePending retrieves the user's pending payments whose deadline is
// still in the future.
func (r *repository) GetActivePending(ctx context.Context, userID string, now time.Time) (*[]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expires_at > ?", userID, models.StatusPending, now).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return &payments, nil
}

// GetRecentByUserAndAmount retrieves payments for the same user and identical
// amount created since the given instant, regardless of status.
func (r *repository) GetRecentByUserAndAmount(ctx context.Context, userID string, amount decimal.Decimal, since time.Time) (*[]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND amount = ? AND created_at > ?", userID, amount, since).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return &payments, nil
}

// Update writes the given payment fields for a transaction id.
func (r *repository) Update(ctx context.Context, payment *models.Payment, transactionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("transaction_id = ?", transactionID).
		Updates(payment).Error
}

// UpdateStatusIfPending applies the patch only while the record is still
// pending. The row predicate makes the state flip a compare-and-set: of two
// racing writers (poll loop and webhook) exactly one observes applied == true.
func (r *repository) UpdateStatusIfPending(ctx context.Context, transactionID string, patch map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("transaction_id = ? AND status = ?", transactionID, models.StatusPending).
		Updates(patch)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
