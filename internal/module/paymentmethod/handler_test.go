package paymentmethod

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysvc/server/internal/shared/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memRepository is an in-memory Repository for handler tests.
type memRepository struct {
	mu      sync.Mutex
	nextID  uint
	methods map[uint]*PaymentMethod
}

func newMemRepository() *memRepository {
	return &memRepository{methods: make(map[uint]*PaymentMethod)}
}

func (m *memRepository) Create(_ context.Context, method *PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	method.ID = m.nextID
	clone := *method
	m.methods[method.ID] = &clone
	return nil
}

func (m *memRepository) Get(_ context.Context, id uint) (*PaymentMethod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	method, ok := m.methods[id]
	if !ok {
		return nil, ErrMethodNotFound
	}
	clone := *method
	return &clone, nil
}

func (m *memRepository) ListAll(_ context.Context) ([]*PaymentMethod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var methods []*PaymentMethod
	for _, method := range m.methods {
		clone := *method
		methods = append(methods, &clone)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].ID < methods[j].ID })
	return methods, nil
}

func (m *memRepository) Update(_ context.Context, method *PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *method
	m.methods[method.ID] = &clone
	return nil
}

func (m *memRepository) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.methods, id)
	return nil
}

func setupRouter(repo Repository) *gin.Engine {
	r := gin.New()
	handler := NewHandler(NewService(repo, nil, nil))
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedMethod(t *testing.T, repo *memRepository, methodType MethodType, isDefault bool) *PaymentMethod {
	t.Helper()
	m := &PaymentMethod{MethodType: methodType, IsDefault: isDefault}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func decodeMethod(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateMethod(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPost, "/api/v1/payments/methods", gin.H{
		"method_type": TypeCredit.Code(),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeMethod(t, w)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, TypeCredit.Code(), resp.MethodType)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, "http://example.com/api/v1/payments/methods/1", w.Header().Get("Location"))
}

func TestCreateMethod_MissingType(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPost, "/api/v1/payments/methods", gin.H{
		"is_default": true,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payment method: missing method_type", decodeError(t, w).Message)
}

func TestCreateMethod_BadTypeCode(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPost, "/api/v1/payments/methods", gin.H{
		"method_type": 42,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payment method: body of request contained bad or no data",
		decodeError(t, w).Message)
}

func TestGetMethod(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypePaypal, true)
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/payments/methods/1", nil)

	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeMethod(t, w)
	assert.Equal(t, TypePaypal.Code(), resp.MethodType)
	assert.True(t, resp.IsDefault)
}

func TestGetMethod_NotFound(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/payments/methods/8", nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Payment method with id '8' was not found.", resp.Message)
}

func TestListMethods(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypeCredit, false)
	seedMethod(t, repo, TypeDebit, true)
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/payments/methods", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, TypeCredit.Code(), resp[0].MethodType)
	assert.Equal(t, TypeDebit.Code(), resp[1].MethodType)
}

func TestListMethods_EmptyIsArray(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/payments/methods", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdateMethod(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypeCredit, true)
	r := setupRouter(repo)

	// Omitting is_default clears a previously-set flag.
	w := doRequest(t, r, http.MethodPut, "/api/v1/payments/methods/1", gin.H{
		"method_type": TypeDebit.Code(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeMethod(t, w)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, TypeDebit.Code(), resp.MethodType)
	assert.False(t, resp.IsDefault)
}

func TestUpdateMethod_NotFound(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPut, "/api/v1/payments/methods/8", gin.H{
		"method_type": TypeDebit.Code(),
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Payment method with id '8' was not found.", decodeError(t, w).Message)
}

func TestDeleteMethod(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypeCredit, false)
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodDelete, "/api/v1/payments/methods/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMethodNotFound)
}

func TestDeleteMethod_MissingIsNoContent(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodDelete, "/api/v1/payments/methods/8", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetDefault(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypeCredit, false)
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPut, "/api/v1/payments/methods/1/set-default", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeMethod(t, w).IsDefault)

	stored, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, stored.IsDefault)
}

func TestSetDefault_DoesNotClearOthers(t *testing.T) {
	repo := newMemRepository()
	seedMethod(t, repo, TypeCredit, true)
	seedMethod(t, repo, TypeDebit, false)
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPut, "/api/v1/payments/methods/2/set-default", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The first method keeps its flag; both are now default.
	first, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, second.IsDefault)
}

func TestSetDefault_NotFound(t *testing.T) {
	repo := newMemRepository()
	r := setupRouter(repo)

	w := doRequest(t, r, http.MethodPut, "/api/v1/payments/methods/8/set-default", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Payment method with id '8' was not found.", decodeError(t, w).Message)
}
