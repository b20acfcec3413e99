package payment

import (
	"context"

	"github.com/paysvc/server/internal/shared/metrics"
	"go.uber.org/zap"
)

// Service implements the payment operations on top of the repository.
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new payment service. Metrics may be nil.
func NewService(repo Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, metrics: m, logger: logger}
}

// Create validates the wire record and persists a new payment. The store
// assigns the id.
func (s *Service) Create(ctx context.Context, req *Request) (*Payment, error) {
	payment := &Payment{}
	if err := req.Deserialize(payment); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		zap.Uint("id", payment.ID),
		zap.Int64("user_id", payment.UserID),
		zap.Int64("order_id", payment.OrderID),
	)
	s.recordOp("create")
	return payment, nil
}

// Get returns the payment with the given id, or ErrPaymentNotFound.
func (s *Service) Get(ctx context.Context, id uint) (*Payment, error) {
	return s.repo.Get(ctx, id)
}

// List dispatches on the supplied filters: user_id wins over order_id,
// and with no filter every payment is returned.
func (s *Service) List(ctx context.Context, filter *ListFilter) ([]*Payment, error) {
	if filter != nil {
		if filter.UserID != nil {
			return s.repo.ListByUser(ctx, *filter.UserID)
		}
		if filter.OrderID != nil {
			return s.repo.ListByOrder(ctx, *filter.OrderID)
		}
	}
	return s.repo.ListAll(ctx)
}

// Update overwrites the payment with the given id. The path id always wins
// over an id in the body. Fails with ErrPaymentNotFound if absent.
func (s *Service) Update(ctx context.Context, id uint, req *Request) (*Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Deserialize(payment); err != nil {
		return nil, err
	}
	payment.ID = id

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment updated", zap.Uint("id", id))
	s.recordOp("update")
	return payment, nil
}

// Delete removes the payment with the given id. Deleting a missing id is
// not an error.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("payment deleted", zap.Uint("id", id))
	s.recordOp("delete")
	return nil
}

func (s *Service) recordOp(op string) {
	if s.metrics != nil {
		s.metrics.RecordOp("payment", op)
	}
}
