// internal/handlers/http/cors_handler.go
package http

import "net/http"

// PreflightHandler mengembalikan 204 untuk OPTIONS.
func PreflightHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFoundHandler membalas 404 dalam envelope JSON yang sama dengan endpoint lain.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "Endpoint not found",
		"path":    r.URL.Path,
	})
}
