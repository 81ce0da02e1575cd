// internal/repositories/jsonfile/incidents_repo.go
// Repo untuk dataset insiden statis berformat JSON array

package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"nearmiss-api/internal/incident"
)

type IncidentsRepo struct {
	Path string
}

// FetchAll membaca dan mem-parse seluruh file sekaligus. Tidak ada partial
// load: file rusak = error, biar startup yang memutuskan fatal.
func (r *IncidentsRepo) FetchAll(ctx context.Context) ([]incident.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", r.Path, err)
	}

	var records []incident.Incident
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", r.Path, err)
	}
	return records, nil
}
