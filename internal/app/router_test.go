package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysvc/server/internal/module/payment"
	"github.com/paysvc/server/internal/module/paymentmethod"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPaymentRepo struct{}

func (stubPaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	p.ID = 1
	return nil
}

func (stubPaymentRepo) Get(_ context.Context, id uint) (*payment.Payment, error) {
	return &payment.Payment{ID: id, UserID: 7, OrderID: 42, Status: payment.StatusUnpaid, MethodID: 1}, nil
}

func (stubPaymentRepo) ListByUser(context.Context, int64) ([]*payment.Payment, error) {
	return nil, nil
}

func (stubPaymentRepo) ListByOrder(context.Context, int64) ([]*payment.Payment, error) {
	return nil, nil
}

func (stubPaymentRepo) ListAll(context.Context) ([]*payment.Payment, error) {
	return nil, nil
}

func (stubPaymentRepo) Update(context.Context, *payment.Payment) error { return nil }
func (stubPaymentRepo) Delete(context.Context, uint) error             { return nil }

type stubMethodRepo struct{}

func (stubMethodRepo) Create(_ context.Context, m *paymentmethod.PaymentMethod) error {
	m.ID = 1
	return nil
}

func (stubMethodRepo) Get(_ context.Context, id uint) (*paymentmethod.PaymentMethod, error) {
	return &paymentmethod.PaymentMethod{ID: id, MethodType: paymentmethod.TypeCredit}, nil
}

func (stubMethodRepo) ListAll(context.Context) ([]*paymentmethod.PaymentMethod, error) {
	return nil, nil
}

func (stubMethodRepo) Update(context.Context, *paymentmethod.PaymentMethod) error { return nil }
func (stubMethodRepo) Delete(context.Context, uint) error                         { return nil }

// The static /payments/methods routes live next to the /payments/:id param
// routes on one engine. That coexistence depends on gin's routing tree, so
// registering both modules together and dispatching across the boundary is
// pinned here.
func TestRouterPaymentRoutesCoexist(t *testing.T) {
	r := gin.New()
	api := r.Group("/api/v1")
	payment.NewHandler(payment.NewService(stubPaymentRepo{}, nil, nil)).RegisterRoutes(api)
	paymentmethod.NewHandler(paymentmethod.NewService(stubMethodRepo{}, nil, nil)).RegisterRoutes(api)

	tests := []struct {
		name     string
		method   string
		path     string
		wantBody string
	}{
		{"payment_by_id", http.MethodGet, "/api/v1/payments/5", `"id":5`},
		{"methods_list_not_captured_by_param", http.MethodGet, "/api/v1/payments/methods", "[]"},
		{"method_by_id", http.MethodGet, "/api/v1/payments/methods/3", `"id":3`},
		{"set_default", http.MethodPut, "/api/v1/payments/methods/3/set-default", `"is_default":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
