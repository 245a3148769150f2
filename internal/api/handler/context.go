package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/teedesigner/design-api/internal/api/middleware"
	"github.com/teedesigner/design-api/internal/core/domain"
)

// ctxActor builds the requesting actor from the claims injected by the Auth
// or OptionalAuth middleware. On routes with optional auth the context keys
// are absent and the zero (anonymous) actor is returned.
func ctxActor(c echo.Context) domain.Actor {
	id, _ := c.Get(middleware.CtxUserID).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return domain.Actor{ID: id, Email: email, Role: role}
}

// successResponse is the canonical success envelope.
type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func success(data any) successResponse {
	return successResponse{Status: "success", Data: data}
}

func successMsg(message string, data any) successResponse {
	return successResponse{Status: "success", Message: message, Data: data}
}
