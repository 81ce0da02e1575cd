// internal/handlers/http/incidents_handler.go
// Handler list/detail insiden dengan pagination + filter

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"nearmiss-api/internal/incident"
	"nearmiss-api/internal/stats"
	"nearmiss-api/internal/util"
)

// inject dari app
var (
	store        *incident.Store
	statsService *stats.Service
	statsCache   *stats.Cache
)

func SetStore(s *incident.Store)       { store = s }
func SetStatsService(s *stats.Service) { statsService = s }
func SetStatsCache(c *stats.Cache)     { statsCache = c }

const (
	defaultPage  = 1
	defaultLimit = 100
)

func parsePageLimit(r *http.Request) (int, int) {
	page, limit := defaultPage, defaultLimit
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}

// ListIncidentsHandler: GET /api/incidents?page=&limit=&year=&month=&region=&severity=&category=&job=
// Tanpa filter: pagination langsung atas koleksi penuh.
// Dengan filter: filter dulu, lalu paginate hasilnya.
func ListIncidentsHandler(w http.ResponseWriter, r *http.Request) {
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "incident store not configured")
		return
	}

	page, limit := parsePageLimit(r)

	f, err := incident.ParseFilter(r.URL.Query())
	if err != nil {
		writeAppError(w, err)
		return
	}

	var (
		data       []incident.Incident
		pagination incident.Pagination
	)
	if f.IsZero() {
		data, pagination = store.Page(page, limit)
	} else {
		data, pagination = incident.PageSlice(f.Apply(store.All()), page, limit)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// GetIncidentHandler: GET /api/incidents/{id} - match ID atau incident_number.
func GetIncidentHandler(w http.ResponseWriter, r *http.Request) {
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "incident store not configured")
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	rec := store.Lookup(id)
	if rec == nil {
		writeAppError(w, util.NotFound("Incident not found"))
		return
	}
	writeData(w, rec)
}
