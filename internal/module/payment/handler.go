package payment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paysvc/server/internal/shared/response"
)

// Handler handles HTTP requests for payments.
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the payment routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.GET("/:id", h.GetPayment)
		payments.PUT("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)
	}
}

// ListPayments returns payments, optionally filtered by user or order.
//
//	@Summary		List payments
//	@Description	List all payments, optionally filtered by user_id or order_id (user_id wins when both are given)
//	@Tags			Payment
//	@Produce		json
//	@Param			user_id		query		int	false	"Filter by user"
//	@Param			order_id	query		int	false	"Filter by order"
//	@Success		200			{array}		Response
//	@Failure		400			{object}	response.ErrorResponse
//	@Router			/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "bad query parameters")
		return
	}

	payments, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, ToResponseList(payments))
}

// GetPayment returns a payment by ID.
//
//	@Summary		Get payment
//	@Description	Get a single payment by id
//	@Tags			Payment
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	Response
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		return
	}

	payment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handlePaymentError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(payment))
}

// CreatePayment creates a payment.
//
//	@Summary		Create payment
//	@Description	Create a new payment; the store assigns the id
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Request	true	"Payment to create"
//	@Success		201		{object}	Response
//	@Failure		400		{object}	response.ErrorResponse
//	@Router			/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payment: body of request contained bad or no data")
		return
	}

	payment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handlePaymentError(c, 0, err)
		return
	}

	c.Header("Location", selfURL(c, payment.ID))
	c.JSON(http.StatusCreated, ToResponse(payment))
}

// UpdatePayment overwrites a payment.
//
//	@Summary		Update payment
//	@Description	Overwrite an existing payment; the path id wins over any id in the body
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int		true	"Payment ID"
//	@Param			request	body		Request	true	"New payment contents"
//	@Success		200		{object}	Response
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/payments/{id} [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payment: body of request contained bad or no data")
		return
	}

	payment, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handlePaymentError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(payment))
}

// DeletePayment removes a payment. Deleting a missing payment still
// returns 204.
//
//	@Summary		Delete payment
//	@Description	Delete a payment; idempotent, returns 204 even when the id does not exist
//	@Tags			Payment
//	@Param			id	path	int	true	"Payment ID"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse
//	@Router			/payments/{id} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Helpers ---

func paymentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid payment ID")
		return 0, false
	}
	return uint(id), true
}

func selfURL(c *gin.Context, id uint) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/v1/payments/%d", scheme, c.Request.Host, id)
}

func handlePaymentError(c *gin.Context, id uint, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Error())
	case errors.Is(err, ErrPaymentNotFound):
		response.NotFound(c, fmt.Sprintf("Payment with id '%d' was not found.", id))
	default:
		response.InternalError(c, "")
	}
}
