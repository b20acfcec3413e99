package paymentmethod

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paysvc/server/internal/shared/response"
)

// Handler handles HTTP requests for payment methods.
type Handler struct {
	service *Service
}

// NewHandler creates a new payment method handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the payment method routes. They are nested
// under /payments to match the public API surface.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	methods := r.Group("/payments/methods")
	{
		methods.GET("", h.ListMethods)
		methods.POST("", h.CreateMethod)
		methods.GET("/:id", h.GetMethod)
		methods.PUT("/:id", h.UpdateMethod)
		methods.DELETE("/:id", h.DeleteMethod)
		methods.PUT("/:id/set-default", h.SetDefault)
	}
}

// ListMethods returns every payment method.
//
//	@Summary		List payment methods
//	@Tags			PaymentMethod
//	@Produce		json
//	@Success		200	{array}	Response
//	@Router			/payments/methods [get]
func (h *Handler) ListMethods(c *gin.Context) {
	methods, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, ToResponseList(methods))
}

// GetMethod returns a payment method by ID.
//
//	@Summary		Get payment method
//	@Tags			PaymentMethod
//	@Produce		json
//	@Param			id	path		int	true	"Payment method ID"
//	@Success		200	{object}	Response
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/payments/methods/{id} [get]
func (h *Handler) GetMethod(c *gin.Context) {
	id, ok := methodID(c)
	if !ok {
		return
	}

	method, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleMethodError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(method))
}

// CreateMethod creates a payment method.
//
//	@Summary		Create payment method
//	@Tags			PaymentMethod
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Request	true	"Payment method to create"
//	@Success		201		{object}	Response
//	@Failure		400		{object}	response.ErrorResponse
//	@Router			/payments/methods [post]
func (h *Handler) CreateMethod(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payment method: body of request contained bad or no data")
		return
	}

	method, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleMethodError(c, 0, err)
		return
	}

	c.Header("Location", selfURL(c, method.ID))
	c.JSON(http.StatusCreated, ToResponse(method))
}

// UpdateMethod overwrites a payment method.
//
//	@Summary		Update payment method
//	@Tags			PaymentMethod
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int		true	"Payment method ID"
//	@Param			request	body		Request	true	"New payment method contents"
//	@Success		200		{object}	Response
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/payments/methods/{id} [put]
func (h *Handler) UpdateMethod(c *gin.Context) {
	id, ok := methodID(c)
	if !ok {
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payment method: body of request contained bad or no data")
		return
	}

	method, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleMethodError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(method))
}

// DeleteMethod removes a payment method. Deleting a missing method still
// returns 204.
//
//	@Summary		Delete payment method
//	@Tags			PaymentMethod
//	@Param			id	path	int	true	"Payment method ID"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse
//	@Router			/payments/methods/{id} [delete]
func (h *Handler) DeleteMethod(c *gin.Context) {
	id, ok := methodID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefault marks a payment method as the default.
//
//	@Summary		Set default payment method
//	@Description	Mark the payment method as default; other methods keep their flags
//	@Tags			PaymentMethod
//	@Produce		json
//	@Param			id	path		int	true	"Payment method ID"
//	@Success		200	{object}	Response
//	@Failure		400	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/payments/methods/{id}/set-default [put]
func (h *Handler) SetDefault(c *gin.Context) {
	id, ok := methodID(c)
	if !ok {
		return
	}

	method, err := h.service.SetDefault(c.Request.Context(), id)
	if err != nil {
		handleMethodError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(method))
}

// --- Helpers ---

func methodID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid payment method ID")
		return 0, false
	}
	return uint(id), true
}

func selfURL(c *gin.Context, id uint) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/v1/payments/methods/%d", scheme, c.Request.Host, id)
}

func handleMethodError(c *gin.Context, id uint, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Error())
	case errors.Is(err, ErrMethodNotFound):
		response.NotFound(c, fmt.Sprintf("Payment method with id '%d' was not found.", id))
	default:
		response.InternalError(c, "")
	}
}
