package repository

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements the PaymentRepository port using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func paymentToModel(payment *entity.Payment) model.Payment {
	return model.Payment{
		UserID:    payment.UserID,
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		CreatedAt: payment.CreatedAt,
	}
}

func paymentToEntity(m *model.Payment) entity.Payment {
	return entity.Payment{
		ID:        m.PaymentID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Status:    entity.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// findOne returns the first row matching the query, or nil when there is none
func (r *PaymentRepository) findOne(ctx context.Context, operation, userID string, query *gorm.DB) (*entity.Payment, error) {
	var rows []model.Payment
	if err := query.WithContext(ctx).Limit(1).Find(&rows).Error; err != nil {
		return nil, mapStoreError(r.errorClassifier, r.logger, operation, userID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	payment := paymentToEntity(&rows[0])
	return &payment, nil
}

// FindSucceeded returns the succeeded payment with the given ID, or nil
func (r *PaymentRepository) FindSucceeded(ctx context.Context, userID, paymentID string) (*entity.Payment, error) {
	query := r.db.Where("user_id = ? AND payment_id = ? AND status = ?",
		userID, paymentID, string(entity.PaymentStatusSucceeded))
	return r.findOne(ctx, "checking payment", userID, query)
}

// FindByPaymentID returns the payment with the given ID in any status, or nil
func (r *PaymentRepository) FindByPaymentID(ctx context.Context, userID, paymentID string) (*entity.Payment, error) {
	query := r.db.Where("user_id = ? AND payment_id = ?", userID, paymentID)
	return r.findOne(ctx, "finding payment", userID, query)
}

// Create appends a payment to the log
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := paymentToModel(payment)

	if err := r.db.WithContext(ctx).Create(&paymentModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate payment detected", map[string]any{
				"payment_id": payment.ID,
				"user_id":    payment.UserID,
			})
			return errs.ErrPaymentAlreadyProcessed
		}
		return mapStoreError(r.errorClassifier, r.logger, "recording payment", payment.UserID, err)
	}

	r.logger.Info("Payment recorded", map[string]any{
		"payment_id": payment.ID,
		"user_id":    payment.UserID,
		"amount":     payment.Amount,
		"status":     string(payment.Status),
	})
	return nil
}

// ListByUser returns the user's payments, most recent first
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]entity.Payment, error) {
	var rows []model.Payment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, mapStoreError(r.errorClassifier, r.logger, "listing payments", userID, err)
	}

	payments := make([]entity.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, paymentToEntity(&rows[i]))
	}
	return payments, nil
}
