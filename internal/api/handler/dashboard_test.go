package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
)

func TestDashboardRoutes(t *testing.T) {
	rt := router.New(router.WithRoutes(Dashboard()...))

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/", contentType: "text/html; charset=utf-8", contains: "/api/status"},
		{path: "/manifest.json", contentType: "application/manifest+json", contains: `"start_url": "/"`},
		{path: "/sw.js", contentType: "application/javascript; charset=utf-8", contains: "/api/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestEmbeddedFile_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	EmbeddedFile("templates/inexistente.html", "text/html").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
