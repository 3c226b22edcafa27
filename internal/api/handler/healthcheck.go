package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// StatusReporter expõe o estado de um serviço em segundo plano
type StatusReporter interface {
	GetStatus() map[string]any
}

// CacheReporter expõe o estado do cache de snapshots
type CacheReporter interface {
	CacheStatus() map[string]any
}

type healthcheckResponse struct {
	Status          string         `json:"status"`
	Time            time.Time      `json:"time"`
	SnapshotCache   map[string]any `json:"snapshot_cache,omitempty"`
	SnapshotRefresh map[string]any `json:"snapshot_refresh,omitempty"`
}

func HealthcheckHandler(reporter StatusReporter, cache CacheReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
		}
		if reporter != nil {
			response.SnapshotRefresh = reporter.GetStatus()
		}
		if cache != nil {
			response.SnapshotCache = cache.CacheStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
