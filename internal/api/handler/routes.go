package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard/pkg/middleware"
	"github.com/vfg2006/sales-dashboard/web"
)

// noCache faz o navegador revalidar; o service worker controla o próprio cache
var noCache = []func(http.Handler) http.Handler{middleware.NoCache()}

func Healthcheck(refresh StatusReporter, cache CacheReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/healthcheck",
			Method:      http.MethodGet,
			Handler:     HealthcheckHandler(refresh, cache),
			Middlewares: noCache,
		},
	}
}

// Dashboard retorna as rotas do front-end embutido
func Dashboard() []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     EmbeddedFile(web.DashboardPath, "text/html; charset=utf-8"),
			Middlewares: noCache,
		},
		{
			Path:        "/manifest.json",
			Method:      http.MethodGet,
			Handler:     EmbeddedFile(web.ManifestPath, "application/manifest+json"),
			Middlewares: noCache,
		},
		{
			Path:        "/sw.js",
			Method:      http.MethodGet,
			Handler:     EmbeddedFile(web.WorkerPath, "application/javascript; charset=utf-8"),
			Middlewares: noCache,
		},
	}
}

func Status(provider dashboard.StatusProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/api/status",
			Method:      http.MethodGet,
			Handler:     GetStatus(provider),
			Middlewares: noCache,
		},
	}
}
