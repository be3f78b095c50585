package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/core/ports"
)

// OverviewHandler serves the dashboard landing rollup.
type OverviewHandler struct {
	service ports.OverviewService
}

func NewOverviewHandler(service ports.OverviewService) *OverviewHandler {
	return &OverviewHandler{service: service}
}

// Stats handles GET /v1/overview.
//
// @Summary      Dashboard overview counters
// @Tags         overview
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OverviewStats
// @Router       /v1/overview [get]
func (h *OverviewHandler) Stats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
