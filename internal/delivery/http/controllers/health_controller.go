package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"indywinners/internal/delivery/http/helpers"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthSuccessResponse is the success response envelope for the health endpoints (200).
type HealthSuccessResponse struct {
	Data  HealthStatus      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

const readyTimeout = 2 * time.Second

// HealthController serves liveness and readiness probes.
type HealthController struct {
	Logger zerolog.Logger
	DB     Pinger
}

// NewHealthController creates a HealthController checking db for readiness.
func NewHealthController(logger zerolog.Logger, db Pinger) *HealthController {
	return &HealthController{
		Logger: logger.With().Str("component", "health_controller").Logger(),
		DB:     db,
	}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse
// @Router /health/live [get]
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "alive"})
}

// Ready godoc
// @Summary Readiness probe
// @Description Pings the database.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /health/ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.Warn().Err(err).Msg("database not ready")
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ready"})
}
