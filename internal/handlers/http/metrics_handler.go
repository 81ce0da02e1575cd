// internal/handlers/http/metrics_handler.go
// Metrics format Prometheus sederhana: app up + jumlah record + isi cache

package http

import (
	"fmt"
	"net/http"
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	if store != nil {
		fmt.Fprintf(w, "# HELP incidents_loaded_total number of incident records in memory\n")
		fmt.Fprintf(w, "# TYPE incidents_loaded_total gauge\nincidents_loaded_total %d\n", store.Len())
	}
	if statsCache != nil {
		fmt.Fprintf(w, "# HELP stats_cache_entries live entries in the stats cache\n")
		fmt.Fprintf(w, "# TYPE stats_cache_entries gauge\nstats_cache_entries %d\n", statsCache.Entries())
	}
}
