package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/core/ports"
)

// CustomerHandler serves the billing-desk customer views. Staff-only; the
// router mounts it behind RBAC.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type updateCustomerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive Pending"`
}

type updateCustomerPricingRequest struct {
	PricingModel string  `json:"pricing_model" validate:"required,oneof=lump hourly"`
	Price        float64 `json:"price" validate:"required,gt=0"`
}

// List handles GET /v1/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Customer
// @Router       /v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get handles GET /v1/customers/:id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /v1/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// UpdateStatus handles PATCH /v1/customers/:id/status.
//
// @Summary      Change a customer's status
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                          true  "Customer id"
// @Param        body  body      updateCustomerStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  map[string]string
// @Router       /v1/customers/{id}/status [patch]
func (h *CustomerHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.UpdateStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// UpdatePricing handles PATCH /v1/customers/:id/pricing.
//
// @Summary      Change a customer's pricing terms
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                           true  "Customer id"
// @Param        body  body      updateCustomerPricingRequest  true  "Pricing terms"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  map[string]string
// @Router       /v1/customers/{id}/pricing [patch]
func (h *CustomerHandler) UpdatePricing(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerPricingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.UpdatePricing(c.Request().Context(), ports.CustomerPricingInput{
		Actor:        actor,
		CustomerID:   id,
		PricingModel: req.PricingModel,
		Price:        req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// CustomerPayments handles GET /v1/customers/:id/payments.
//
// @Summary      List one customer's payment records
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {array}   domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /v1/customers/{id}/payments [get]
func (h *CustomerHandler) CustomerPayments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payments, err := h.service.PaymentsForCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// ListPayments handles GET /v1/payments.
//
// @Summary      List customer payment records
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /v1/payments [get]
func (h *CustomerHandler) ListPayments(c echo.Context) error {
	payments, err := h.service.ListPayments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
