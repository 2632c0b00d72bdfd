package http

import (
	"net/http"
	"time"

	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/httpx"
)

type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Returns 200 with "Server is alive" while the process is up.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	httpx.Response
//	@Router			/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteEnvelope(w, http.StatusOK, nil, "Server is alive")
	}
}

// LivezHandler reports process liveness with uptime and build version. Served
// outside the API prefix for probes; no envelope, monitoring systems read it
// directly.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler reports readiness: the process is up and the store answers a
// ping. Returns 503 while the database is unreachable.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "unavailable",
				Uptime:  time.Since(startTime).String(),
				Version: version,
			})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
