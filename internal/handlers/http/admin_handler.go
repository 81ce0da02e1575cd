// internal/handlers/http/admin_handler.go
// Endpoint admin (JWT): inspeksi dan purge cache statistik

package http

import "net/http"

// AdminCacheStatus: GET /admin/cache
func AdminCacheStatus(w http.ResponseWriter, r *http.Request) {
	if statsCache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache not configured")
		return
	}
	writeData(w, map[string]any{
		"entries": statsCache.Entries(),
	})
}

// AdminCachePurge: POST /admin/cache/purge
func AdminCachePurge(w http.ResponseWriter, r *http.Request) {
	if statsCache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache not configured")
		return
	}
	writeData(w, map[string]any{
		"purged": statsCache.Purge(),
	})
}
