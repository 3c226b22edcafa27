package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetStatus entrega o snapshot do painel. Falhas de montagem viram o corpo
// {"erro", "codigo"} com status 200 para o painel manter os últimos números.
func GetStatus(provider dashboard.StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result := provider.GetStatus(r.Context())

		if !result.OK() {
			if result.Failure != nil {
				logger.WithError(result.Failure.Err).Warn("Painel respondido com erro")
				writeSoftError(w, logger, result.Failure.Code, result.Failure.Message)
				return
			}
			writeSoftError(w, logger, apiErrors.ErrInternalServer, "Erro ao montar o painel")
			return
		}

		etag := `"` + result.Snapshot.ID + `"`
		w.Header().Set("ETag", etag)

		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result.Snapshot); err != nil {
			logger.WithError(err).Error("Erro ao serializar snapshot do painel")
		}
	}
}

func writeSoftError(w http.ResponseWriter, logger log.Logger, code, message string) {
	if err := apiErrors.WriteSoftError(w, code, message); err != nil {
		logger.WithError(err).Error("Erro ao escrever resposta de erro")
	}
}

// etagMatches compara If-None-Match com a ETag atual (comparação fraca)
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}

	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}

	return false
}
