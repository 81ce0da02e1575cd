// internal/handlers/http/respond.go
// Helper envelope JSON {success, data, error}

package http

import (
	"encoding/json"
	"net/http"

	"nearmiss-api/internal/util"
)

func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

// writeAppError memetakan kode AppError ke status HTTP.
func writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch util.CodeOf(err) {
	case "bad_input":
		status = http.StatusBadRequest
	case "not_found":
		status = http.StatusNotFound
	}
	writeError(w, status, err.Error())
}
