package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/core/ports"
)

// ActivityHandler exposes the audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /v1/activity.
//
// @Summary      List visible activity entries, newest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ActivityLog
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Summary handles GET /v1/activity/summary.
//
// @Summary      Activity rollup (today, this week, per category)
// @Tags         activity
// @Produce     json
// @Security     BearerAuth
// @Success      200  {object}  ports.ActivitySummary
// @Router       /v1/activity/summary [get]
func (h *ActivityHandler) Summary(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
