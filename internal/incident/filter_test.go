// internal/incident/filter_test.go

package incident

import (
	"net/url"
	"testing"
)

func intp(v int) *int { return &v }

func sampleRecords() []Incident {
	return []Incident{
		{ID: "1", IncidentNumber: "NM-001", Year: 2024, Month: 1, Week: 1, SeverityLevel: 2, PrimaryCategory: "Dropped Objects", Region: "East", Job: "A", Location: "Site1", UnsafeConditionOrBehavior: "Behavior"},
		{ID: "2", IncidentNumber: "NM-002", Year: 2024, Month: 1, Week: 1, SeverityLevel: 4, PrimaryCategory: "Dropped Objects", Region: "West", Job: "B", Location: "Site2", UnsafeConditionOrBehavior: "Unsafe Condition", IsLCV: true},
		{ID: "3", IncidentNumber: "NM-003", Year: 2024, Month: 2, Week: 6, SeverityLevel: 0, PrimaryCategory: "Work at Height", Region: "East", Job: "A", Location: "Site1"},
		{ID: "4", IncidentNumber: "NM-004", Year: 2023, Month: 12, Week: 50, SeverityLevel: 1, Region: "East", Job: "C", Location: "Site3"},
	}
}

func TestFilterEmptyIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter{}.Apply(records)
	if len(got) != len(records) {
		t.Fatalf("empty filter should return all %d records, got %d", len(records), len(got))
	}
}

func TestFilterCombinesWithAND(t *testing.T) {
	f := Filter{Year: intp(2024), Region: "East"}
	got := f.Apply(sampleRecords())
	if len(got) != 2 {
		t.Fatalf("expected 2 records for year=2024&region=East, got %d", len(got))
	}
	for _, rec := range got {
		if rec.Year != 2024 || rec.Region != "East" {
			t.Fatalf("record %s does not match filter", rec.ID)
		}
	}
}

// Regression: severity_level=0 adalah nilai filter valid, bukan "unset".
func TestFilterSeverityZero(t *testing.T) {
	f := Filter{Year: intp(2024), Severity: intp(0)}
	got := f.Apply(sampleRecords())
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected exactly record 3 for severity=0, got %v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := Filter{Region: "East", Year: intp(2024)}
	once := f.Apply(sampleRecords())
	twice := f.Apply(once)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter{Region: "East"}.Apply(sampleRecords())
	want := []string{"1", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

// Key harus identik untuk filter ekuivalen, apa pun urutan param query.
func TestFilterKeyOrderIndependent(t *testing.T) {
	q1, _ := url.ParseQuery("year=2024&region=East&severity=0")
	q2, _ := url.ParseQuery("severity=0&region=East&year=2024")

	f1, err := ParseFilter(q1)
	if err != nil {
		t.Fatalf("parse q1: %v", err)
	}
	f2, err := ParseFilter(q2)
	if err != nil {
		t.Fatalf("parse q2: %v", err)
	}

	if f1.Key() != f2.Key() {
		t.Fatalf("keys differ: %q vs %q", f1.Key(), f2.Key())
	}
	if f1.Key() == "" {
		t.Fatal("non-empty filter must not have empty key")
	}
}

func TestParseFilterRejectsBadNumeric(t *testing.T) {
	q, _ := url.ParseQuery("year=banana")
	if _, err := ParseFilter(q); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
}

func TestParseFilterSeverityZeroSurvives(t *testing.T) {
	q, _ := url.ParseQuery("severity=0")
	f, err := ParseFilter(q)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Severity == nil || *f.Severity != 0 {
		t.Fatalf("severity=0 lost in parsing: %+v", f)
	}
}
