package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teedesigner/design-api/internal/api/metrics"
	"github.com/teedesigner/design-api/internal/core/access"
	"github.com/teedesigner/design-api/internal/core/ports"
)

// DesignHandler handles HTTP requests for design operations. Every operation
// on an existing design runs the access controller before touching the
// service; the service itself performs no authorization.
type DesignHandler struct {
	service ports.DesignService
}

func NewDesignHandler(service ports.DesignService) *DesignHandler {
	return &DesignHandler{service: service}
}

// checked records denials for observability and converts the decision into
// the domain error consumed by the central error handler.
func checked(dec access.Decision) error {
	if dec.Verdict != access.Allow {
		metrics.AccessDeniedTotal.WithLabelValues(string(dec.Operation), dec.Reason).Inc()
	}
	return dec.Err()
}

// Create handles POST /api/designs.
//
// @Summary      Create a design
// @Tags         designs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDesignRequest  true  "Design attributes"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /designs [post]
func (h *DesignHandler) Create(c echo.Context) error {
	actor := ctxActor(c)
	if err := checked(access.CanCreate(actor)); err != nil {
		return err
	}

	var req createDesignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	design, err := h.service.Create(c.Request().Context(), toCreateInput(req, actor.ID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successMsg("design created", designResponse{Design: design}))
}

// Get handles GET /api/designs/:id. The bearer token is optional here: the
// access controller decides what an anonymous caller may see. A missing
// design reports 404 before any visibility check.
//
// @Summary      Get a design by id
// @Tags         designs
// @Produce      json
// @Param        id  path      string  true  "Design id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /designs/{id} [get]
func (h *DesignHandler) Get(c echo.Context) error {
	design, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if err := checked(access.CanRead(ctxActor(c), design)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(designResponse{Design: design}))
}

// ListPublic handles GET /api/designs/public.
//
// @Summary      List public designs
// @Tags         designs
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /designs/public [get]
func (h *DesignHandler) ListPublic(c echo.Context) error {
	designs, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(designsResponse{Designs: designs}))
}

// ListMine handles GET /api/designs/user/mine — the caller's own designs,
// public and private.
//
// @Summary      List the caller's designs
// @Tags         designs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  map[string]string
// @Router       /designs/user/mine [get]
func (h *DesignHandler) ListMine(c echo.Context) error {
	actor := ctxActor(c)
	designs, err := h.service.ListByOwner(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(designsResponse{Designs: designs}))
}

// Search handles GET /api/designs/search?query=. Results are implicitly
// scoped to public designs regardless of the requester.
//
// @Summary      Search public designs by name
// @Tags         designs
// @Produce      json
// @Param        query  query     string  true  "Search term"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  map[string]string
// @Router       /designs/search [get]
func (h *DesignHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	designs, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(designsResponse{Designs: designs}))
}

// Update handles PUT /api/designs/:id. Owner only: admins get no update
// override. Only whitelisted fields are applied.
//
// @Summary      Update a design
// @Tags         designs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Design id"
// @Param        body  body      updateDesignRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /designs/{id} [put]
func (h *DesignHandler) Update(c echo.Context) error {
	id := c.Param("id")

	design, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := checked(access.CanUpdate(ctxActor(c), design)); err != nil {
		return err
	}

	var req updateDesignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), id, toDesignPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMsg("design updated", designResponse{Design: updated}))
}

// Delete handles DELETE /api/designs/:id. Owner or admin.
//
// @Summary      Delete a design
// @Tags         designs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Design id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /designs/{id} [delete]
func (h *DesignHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	design, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := checked(access.CanDelete(ctxActor(c), design)); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMsg("design deleted", nil))
}
