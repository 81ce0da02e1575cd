// internal/handlers/http/stats_handler.go
// Handler statistik: /api/stats/* dengan cache 10 menit di facade

package http

import (
	"net/http"

	"nearmiss-api/internal/incident"
	"nearmiss-api/internal/stats"
)

// StatsAllHandler: GET /api/stats/all - seluruh Bundle sekaligus.
// Field "cached" memberi tahu FE apakah hasil dari cache.
func StatsAllHandler(w http.ResponseWriter, r *http.Request) {
	f, ok := parseStatsFilter(w, r)
	if !ok {
		return
	}
	bundle, cached := statsService.Statistics(f)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    bundle,
		"cached":  cached,
	})
}

// StatsOverviewHandler: GET /api/stats/overview - hanya overview, cache key sendiri.
func StatsOverviewHandler(w http.ResponseWriter, r *http.Request) {
	f, ok := parseStatsFilter(w, r)
	if !ok {
		return
	}
	overview, cached := statsService.Overview(f)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    overview,
		"cached":  cached,
	})
}

// Satu view per endpoint; semuanya dihitung dari Bundle yang sama
// sehingga query berulang tetap kena cache facade.
func StatsSeverityHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.Severity })
}

func StatsTrendsHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.Trends })
}

func StatsCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.Categories })
}

func StatsRegionsHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.Regions })
}

func StatsBehaviorHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.BehaviorCondition })
}

func StatsHeatmapHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.WeeklyHeatmap })
}

func StatsCausesHandler(w http.ResponseWriter, r *http.Request) {
	statsView(w, r, func(b stats.Bundle) any { return b.ActionCauses })
}

// StatsFiltersHandler: GET /api/stats/filters - pilihan dropdown FE.
func StatsFiltersHandler(w http.ResponseWriter, r *http.Request) {
	if statsService == nil {
		writeError(w, http.StatusServiceUnavailable, "stats service not configured")
		return
	}
	options, cached := statsService.Options()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    options,
		"cached":  cached,
	})
}

func statsView(w http.ResponseWriter, r *http.Request, pick func(stats.Bundle) any) {
	f, ok := parseStatsFilter(w, r)
	if !ok {
		return
	}
	bundle, _ := statsService.Statistics(f)
	writeData(w, pick(bundle))
}

func parseStatsFilter(w http.ResponseWriter, r *http.Request) (incident.Filter, bool) {
	if statsService == nil {
		writeError(w, http.StatusServiceUnavailable, "stats service not configured")
		return incident.Filter{}, false
	}
	f, err := incident.ParseFilter(r.URL.Query())
	if err != nil {
		writeAppError(w, err)
		return incident.Filter{}, false
	}
	return f, true
}
