// internal/incident/incident.go
// Tipe record insiden near-miss + tabel label severity

package incident

// Incident adalah satu record near-miss dari dataset dashboard.
// Field numerik yang kosong di-default 0, field string kosong dianggap "Unknown"
// saat agregasi. Record tidak pernah dimutasi setelah load.
type Incident struct {
	ID                        string `json:"_id"`
	IncidentNumber            string `json:"incident_number"`
	Year                      int    `json:"year"`
	Month                     int    `json:"month"`
	Week                      int    `json:"week"`
	SeverityLevel             int    `json:"severity_level"`
	PrimaryCategory           string `json:"primary_category"`
	ActionCause               string `json:"action_cause"`
	Region                    string `json:"region"`
	Job                       string `json:"job"`
	Location                  string `json:"location"`
	UnsafeConditionOrBehavior string `json:"unsafe_condition_or_behavior"`
	IsLCV                     bool   `json:"is_lcv"`
}

var severityLabels = map[int]string{
	0: "Minimal",
	1: "Low",
	2: "Medium",
	3: "High",
	4: "Critical",
}

// SeverityLabel mengembalikan label untuk level 0-4, selain itu "Unknown".
func SeverityLabel(level int) string {
	if l, ok := severityLabels[level]; ok {
		return l
	}
	return "Unknown"
}
