// internal/repositories/mysql/incidents_repo.go
// Repo insiden dari tabel dashboard_incidents (sumber alternatif file JSON)

package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"nearmiss-api/internal/incident"
)

type IncidentsRepo struct {
	DB *sql.DB
}

// FetchAll menarik seluruh record sekali saat startup. Dataset read-only,
// jadi tidak ada query inkremental setelah load.
func (r *IncidentsRepo) FetchAll(ctx context.Context) ([]incident.Incident, error) {
	query := `
		SELECT id, incident_number, year, month, week, severity_level,
		       primary_category, action_cause, region, job, location,
		       unsafe_condition_or_behavior, is_lcv
		FROM dashboard_incidents
		ORDER BY year, month, week`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query dashboard_incidents: %w", err)
	}
	defer rows.Close()

	var list []incident.Incident
	for rows.Next() {
		var rec incident.Incident
		var category, cause, region, job, location, ucb sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.IncidentNumber, &rec.Year, &rec.Month, &rec.Week,
			&rec.SeverityLevel, &category, &cause, &region, &job, &location,
			&ucb, &rec.IsLCV,
		); err != nil {
			return nil, fmt.Errorf("scan dashboard_incident: %w", err)
		}
		rec.PrimaryCategory = category.String
		rec.ActionCause = cause.String
		rec.Region = region.String
		rec.Job = job.String
		rec.Location = location.String
		rec.UnsafeConditionOrBehavior = ucb.String
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}
