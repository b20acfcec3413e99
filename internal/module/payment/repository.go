package payment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the interface for payment data access.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id uint) (*Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]*Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*Payment, error)
	ListAll(ctx context.Context) ([]*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new payment repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uint) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &payment, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*Payment, error) {
	var payments []*Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments by user: %w", err)
	}
	return payments, nil
}

func (r *repository) ListByOrder(ctx context.Context, orderID int64) ([]*Payment, error) {
	var payments []*Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments by order: %w", err)
	}
	return payments, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Payment, error) {
	var payments []*Payment
	if err := r.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *repository) Update(ctx context.Context, payment *Payment) error {
	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete removes a payment. Deleting an id that does not exist is a no-op.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&Payment{}, id).Error; err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
