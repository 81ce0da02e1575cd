// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "nearmiss-api/internal/handlers/http"
	"nearmiss-api/internal/middleware"
)

// RegisterRoutes menambahkan seluruh route HTTP.
func RegisterRoutes(r *mux.Router) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", hh.LoginHandler).Methods(http.MethodPost, http.MethodOptions)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/incidents", hh.ListIncidentsHandler).
		Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/incidents/{id}", hh.GetIncidentHandler).
		Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/stats/all", hh.StatsAllHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/overview", hh.StatsOverviewHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/severity", hh.StatsSeverityHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/trends", hh.StatsTrendsHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/categories", hh.StatsCategoriesHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/regions", hh.StatsRegionsHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/behavior", hh.StatsBehaviorHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/heatmap", hh.StatsHeatmapHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/causes", hh.StatsCausesHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats/filters", hh.StatsFiltersHandler).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/ai/query", hh.AIQueryHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/ai/insights", hh.AIInsightsHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ai/status", hh.AIStatusHandler).Methods(http.MethodGet, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// Admin (JWT protected)
	adminJWT := r.PathPrefix("/admin").Subrouter()
	adminJWT.Use(middleware.AdminJWTAuth)
	adminJWT.HandleFunc("/cache", hh.AdminCacheStatus).Methods(http.MethodGet)
	adminJWT.HandleFunc("/cache/purge", hh.AdminCachePurge).Methods(http.MethodPost)

	// 404 JSON envelope untuk path yang tidak dikenal
	r.NotFoundHandler = http.HandlerFunc(hh.NotFoundHandler)
}
