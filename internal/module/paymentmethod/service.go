package paymentmethod

import (
	"context"

	"github.com/paysvc/server/internal/shared/metrics"
	"go.uber.org/zap"
)

// Service implements the payment method operations on top of the
// repository.
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new payment method service. Metrics may be nil.
func NewService(repo Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, metrics: m, logger: logger}
}

// Create validates the wire record and persists a new payment method.
func (s *Service) Create(ctx context.Context, req *Request) (*PaymentMethod, error) {
	method := &PaymentMethod{}
	if err := req.Deserialize(method); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("payment method created",
		zap.Uint("id", method.ID),
		zap.Stringer("method_type", method.MethodType),
	)
	s.recordOp("create")
	return method, nil
}

// Get returns the payment method with the given id, or ErrMethodNotFound.
func (s *Service) Get(ctx context.Context, id uint) (*PaymentMethod, error) {
	return s.repo.Get(ctx, id)
}

// List returns every payment method.
func (s *Service) List(ctx context.Context) ([]*PaymentMethod, error) {
	return s.repo.ListAll(ctx)
}

// Update overwrites the payment method with the given id. The path id
// always wins over an id in the body. Fails with ErrMethodNotFound if
// absent.
func (s *Service) Update(ctx context.Context, id uint, req *Request) (*PaymentMethod, error) {
	method, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Deserialize(method); err != nil {
		return nil, err
	}
	method.ID = id

	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("payment method updated", zap.Uint("id", id))
	s.recordOp("update")
	return method, nil
}

// Delete removes the payment method with the given id. Deleting a missing
// id is not an error.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("payment method deleted", zap.Uint("id", id))
	s.recordOp("delete")
	return nil
}

// SetDefault marks the payment method with the given id as the default.
// Other records keep their flags; the operation is deliberately not
// exclusive. Fails with ErrMethodNotFound if absent.
func (s *Service) SetDefault(ctx context.Context, id uint) (*PaymentMethod, error) {
	method, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	method.IsDefault = true
	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("payment method set as default", zap.Uint("id", id))
	if s.metrics != nil {
		s.metrics.RecordDefaultSet()
	}
	return method, nil
}

func (s *Service) recordOp(op string) {
	if s.metrics != nil {
		s.metrics.RecordOp("payment_method", op)
	}
}
