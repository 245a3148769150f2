package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health and GET /health/ready.
type HealthHandler struct {
	env   string
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthHandler(env string, db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{env: env, mongo: db, redis: rdb}
}

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	DBStatus    string `json:"dbStatus"`
}

// Health reports liveness plus a storage connectivity flag. It always
// answers 200; a broken storage connection shows up in dbStatus, not in the
// status code.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:      "success",
		Environment: h.env,
		DBStatus:    dbStatus,
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness checks MongoDB and Redis connectivity before declaring the
// service ready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
