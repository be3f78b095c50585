package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/api/metrics"
	"github.com/taxpro/office-api/internal/core/ports"
)

// ReturnHandler handles HTTP requests for tax-return operations.
type ReturnHandler struct {
	service ports.ReturnService
}

func NewReturnHandler(service ports.ReturnService) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// List handles GET /v1/returns.
//
// @Summary      List visible tax returns
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TaxReturn
// @Failure      401  {object}  map[string]string
// @Router       /v1/returns [get]
func (h *ReturnHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	returns, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, returns)
}

// Get handles GET /v1/returns/:id.
//
// @Summary      Get a tax return
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Return id"
// @Success      200  {object}  domain.TaxReturn
// @Failure      404  {object}  map[string]string
// @Router       /v1/returns/{id} [get]
func (h *ReturnHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ret, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ret)
}

// Create handles POST /v1/returns.
//
// @Summary      Open a new tax return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReturnRequest  true  "Return details"
// @Success      201   {object}  domain.TaxReturn
// @Failure      400   {object}  map[string]string
// @Router       /v1/returns [post]
func (h *ReturnHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ret, err := h.service.Create(c.Request().Context(), ports.CreateReturnInput{
		Actor:     actor,
		Type:      req.Type,
		Year:      req.Year,
		OwnerID:   req.OwnerID,
		OwnerName: req.OwnerName,
	})
	if err != nil {
		return err
	}

	metrics.ReturnsCreatedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, ret)
}

// Update handles PATCH /v1/returns/:id.
//
// @Summary      Update a tax return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Return id"
// @Param        body  body      updateReturnRequest  true  "Fields to change"
// @Success      200   {object}  domain.TaxReturn
// @Failure      404   {object}  map[string]string
// @Router       /v1/returns/{id} [patch]
func (h *ReturnHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ret, err := h.service.Update(c.Request().Context(), actor, id, ports.ReturnPatch{
		Type:       req.Type,
		Year:       req.Year,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ret)
}

// AddDocument handles POST /v1/returns/:id/documents.
//
// @Summary      Attach document metadata to a return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Return id"
// @Param        body  body      addDocumentRequest  true  "Document metadata"
// @Success      201   {object}  domain.Document
// @Failure      404   {object}  map[string]string
// @Router       /v1/returns/{id}/documents [post]
func (h *ReturnHandler) AddDocument(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req addDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.service.AddDocument(c.Request().Context(), ports.AddDocumentInput{
		Actor:    actor,
		ReturnID: id,
		Name:     req.Name,
		Type:     req.Type,
		Size:     req.Size,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, doc)
}

// AddComment handles POST /v1/returns/:id/comments.
//
// @Summary      Comment on a return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Return id"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      201   {object}  domain.Comment
// @Failure      404   {object}  map[string]string
// @Router       /v1/returns/{id}/comments [post]
func (h *ReturnHandler) AddComment(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), actor, id, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// StatusCounts handles GET /v1/returns/stats.
//
// @Summary      Returns-per-status rollup
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatusCount
// @Router       /v1/returns/stats [get]
func (h *ReturnHandler) StatusCounts(c echo.Context) error {
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
