package handler

import (
	"io/fs"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/web"
)

// EmbeddedFile serve um arquivo do front-end embutido no binário
func EmbeddedFile(name, contentType string) http.Handler {
	content, err := fs.ReadFile(web.Files, name)
	if err != nil {
		logrus.WithError(err).WithField("file", name).Error("Arquivo embutido não encontrado")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if content == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Arquivo não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write(content); err != nil {
			logrus.WithError(err).Warn("Erro ao responder arquivo embutido")
		}
	})
}
