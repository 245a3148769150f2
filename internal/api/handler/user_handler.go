package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/ports"
)

// UserHandler handles profile and user-administration routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// updateProfileRequest carries the self-service mutable fields. Role is not
// accepted here under any spelling.
type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type usersData struct {
	Users []*domain.User `json:"users"`
}

// GetProfile handles GET /api/users/profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor := ctxActor(c)
	user, err := h.service.GetByID(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(userData{User: user}))
}

// UpdateProfile handles PUT /api/users/profile. Name and email only.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == nil && req.Email == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one field must be provided")
	}

	actor := ctxActor(c)
	user, err := h.service.UpdateProfile(c.Request().Context(), actor.ID, ports.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMsg("profile updated", userData{User: user}))
}

// List handles GET /api/users. Admin only (enforced by the RBAC middleware).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(usersData{Users: users}))
}

// Delete handles DELETE /api/users/:userId. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  successResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successMsg("user deleted", nil))
}
