package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/api/metrics"
	"github.com/taxpro/office-api/internal/core/ports"
)

// BillingHandler handles HTTP requests for invoices and payments.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type createInvoiceRequest struct {
	UserID      int     `json:"user_id" validate:"required,gt=0"`
	ReturnID    *int    `json:"return_id,omitempty"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type payInvoiceRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// List handles GET /v1/invoices.
//
// @Summary      List visible invoices
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Invoice
// @Router       /v1/invoices [get]
func (h *BillingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Get handles GET /v1/invoices/:id.
//
// @Summary      Get an invoice
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id} [get]
func (h *BillingHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inv, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Create handles POST /v1/invoices.
//
// @Summary      Issue an invoice
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Router       /v1/invoices [post]
func (h *BillingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.CreateInvoice(c.Request().Context(), ports.CreateInvoiceInput{
		Actor:       actor,
		UserID:      req.UserID,
		ReturnID:    req.ReturnID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.InvoicesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, inv)
}

// Pay handles POST /v1/invoices/:id/pay.
//
// @Summary      Process a payment for an invoice
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Invoice id"
// @Param        body  body      payInvoiceRequest  true  "Payment method"
// @Success      200   {object}  domain.Invoice
// @Failure      404   {object}  map[string]string
// @Router       /v1/invoices/{id}/pay [post]
func (h *BillingHandler) Pay(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req payInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.ProcessPayment(c.Request().Context(), actor, id, req.PaymentMethod)
	if err != nil {
		return err
	}

	metrics.PaymentsProcessedTotal.WithLabelValues(req.PaymentMethod).Inc()
	return c.JSON(http.StatusOK, inv)
}

// Revenue handles GET /v1/invoices/revenue.
//
// @Summary      Revenue rollup by billing status
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RevenueSummary
// @Router       /v1/invoices/revenue [get]
func (h *BillingHandler) Revenue(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Revenue(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// StatusCounts handles GET /v1/invoices/stats.
//
// @Summary      Invoices-per-status rollup
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.InvoiceStatusCount
// @Router       /v1/invoices/stats [get]
func (h *BillingHandler) StatusCounts(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	counts, err := h.service.StatusCounts(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
