// Package web embute o front-end estático do painel
package web

import "embed"

//go:embed templates/dashboard.html static/manifest.json static/sw.js
var Files embed.FS

const (
	DashboardPath = "templates/dashboard.html"
	ManifestPath  = "static/manifest.json"
	WorkerPath    = "static/sw.js"
)
