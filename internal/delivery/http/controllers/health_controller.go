package controllers

import (
	"net/http"
	"time"

	"eventcheckin/internal/clock"
	"eventcheckin/internal/delivery/http/helpers"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type HealthController struct {
	Clock clock.Clock
}

func NewHealthController(clk clock.Clock) *HealthController {
	return &HealthController{Clock: clk}
}

// Health godoc
// @Summary Liveness check
// @Description Reports that the service is up, with the current server time (UTC).
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.HealthResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Time: c.Clock.Now()})
}
