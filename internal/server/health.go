package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/roster/internal/client"
)

// RosterCounter reports the number of records in the roster.
type RosterCounter interface {
	Len() int
}

type HealthChecker struct {
	roster     RosterCounter
	uiHost     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHealthChecker builds the /healthz handler. An empty uiHost skips the page probe.
func NewHealthChecker(roster RosterCounter, uiHost string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		roster:     roster,
		uiHost:     uiHost,
		httpClient: client.CreateHTTPClient(log, time.Duration(clientTO)*time.Second),
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	var err error
	status := make(map[string]string)
	overallStatus := http.StatusOK

	status["roster"] = "ok"
	status["records"] = strconv.Itoa(h.roster.Len())

	if h.uiHost != "" {
		resp, err := h.httpClient.Head(h.uiHost) //nolint:noctx // ctx is overhead for this healthcheck
		switch {
		case err != nil:
			status["ui"] = "unreachable"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed: roster page unreachable",
				"host", h.uiHost, "error", err)
		case resp.StatusCode >= http.StatusBadRequest:
			status["ui"] = "degraded"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed: roster page returned error status",
				"host", h.uiHost, "status_code", resp.StatusCode)
		default:
			status["ui"] = "ok"
		}
		if resp != nil {
			if err = resp.Body.Close(); err != nil {
				h.log.WarnContext(req.Context(), "Failed to close response body", "error", err)
			}
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
