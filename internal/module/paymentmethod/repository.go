package paymentmethod

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the interface for payment method data access.
type Repository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	Get(ctx context.Context, id uint) (*PaymentMethod, error)
	ListAll(ctx context.Context) ([]*PaymentMethod, error)
	Update(ctx context.Context, method *PaymentMethod) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new payment method repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, method *PaymentMethod) error {
	if err := r.db.WithContext(ctx).Create(method).Error; err != nil {
		return fmt.Errorf("create payment method: %w", err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uint) (*PaymentMethod, error) {
	var method PaymentMethod
	err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMethodNotFound
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &method, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*PaymentMethod, error) {
	var methods []*PaymentMethod
	if err := r.db.WithContext(ctx).Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

func (r *repository) Update(ctx context.Context, method *PaymentMethod) error {
	// Select forces is_default writes even when the new value is the zero
	// value.
	err := r.db.WithContext(ctx).
		Select("method_type", "is_default").
		Where("id = ?", method.ID).
		Updates(method).Error
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete removes a payment method. Deleting an id that does not exist is
// a no-op.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&PaymentMethod{}, id).Error; err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
