// internal/incident/filter.go
// Filter insiden: kombinasi AND dari constraint equality opsional

package incident

import (
	"net/url"
	"strconv"
	"strings"

	"nearmiss-api/internal/util"
)

// Filter adalah set constraint opsional atas koleksi insiden.
// Field numerik pakai pointer supaya nilai 0 tetap bisa jadi constraint
// (severity_level=0 valid dan harus dibedakan dari "tidak di-set").
type Filter struct {
	Year     *int
	Month    *int
	Severity *int
	Region   string
	Category string
	Job      string
}

func (f Filter) IsZero() bool {
	return f.Year == nil && f.Month == nil && f.Severity == nil &&
		f.Region == "" && f.Category == "" && f.Job == ""
}

// Apply mengembalikan subsequence record yang lolos semua constraint,
// urutan input dipertahankan. Filter kosong = identity.
func (f Filter) Apply(records []Incident) []Incident {
	if f.IsZero() {
		return records
	}

	out := make([]Incident, 0, len(records))
	for _, rec := range records {
		if f.Year != nil && rec.Year != *f.Year {
			continue
		}
		if f.Month != nil && rec.Month != *f.Month {
			continue
		}
		if f.Severity != nil && rec.SeverityLevel != *f.Severity {
			continue
		}
		if f.Region != "" && rec.Region != f.Region {
			continue
		}
		if f.Category != "" && rec.PrimaryCategory != f.Category {
			continue
		}
		if f.Job != "" && rec.Job != f.Job {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Key menghasilkan serialisasi kanonik filter untuk cache key.
// Urutan field tetap, field kosong di-skip: dua filter yang ekuivalen
// selalu menghasilkan key yang sama, apa pun urutan konstruksinya.
func (f Filter) Key() string {
	var parts []string
	if f.Year != nil {
		parts = append(parts, "year="+strconv.Itoa(*f.Year))
	}
	if f.Month != nil {
		parts = append(parts, "month="+strconv.Itoa(*f.Month))
	}
	if f.Region != "" {
		parts = append(parts, "region="+f.Region)
	}
	if f.Severity != nil {
		parts = append(parts, "severity="+strconv.Itoa(*f.Severity))
	}
	if f.Category != "" {
		parts = append(parts, "category="+f.Category)
	}
	if f.Job != "" {
		parts = append(parts, "job="+f.Job)
	}
	return strings.Join(parts, "&")
}

// ParseFilter membaca filter dari query params (year, month, severity,
// region, category, job). Param numerik yang tidak valid = bad_input.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter

	parseInt := func(name string) (*int, error) {
		v := strings.TrimSpace(q.Get(name))
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, util.BadInput("invalid " + name + ": " + v)
		}
		return &n, nil
	}

	var err error
	if f.Year, err = parseInt("year"); err != nil {
		return Filter{}, err
	}
	if f.Month, err = parseInt("month"); err != nil {
		return Filter{}, err
	}
	if f.Severity, err = parseInt("severity"); err != nil {
		return Filter{}, err
	}
	f.Region = strings.TrimSpace(q.Get("region"))
	f.Category = strings.TrimSpace(q.Get("category"))
	f.Job = strings.TrimSpace(q.Get("job"))

	return f, nil
}
