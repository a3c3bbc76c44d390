package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/aussiebroadwan/heroes/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the hero store check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	heroesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	heroesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &heroesdk.HealthChecks{Store: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := heroesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
