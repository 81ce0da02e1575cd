// internal/repositories/jsonfile/incidents_repo_test.go

package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incidents.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestFetchAllParsesDataset(t *testing.T) {
	path := writeDataset(t, `[
		{"_id":"1","incident_number":"NM-001","year":2024,"month":1,"week":1,
		 "severity_level":2,"primary_category":"Dropped Objects","region":"East",
		 "job":"A","location":"Site1","unsafe_condition_or_behavior":"Behavior","is_lcv":false},
		{"_id":"2","incident_number":"NM-002","year":2024,"month":1,"week":1,
		 "severity_level":0,"is_lcv":true}
	]`)

	repo := &IncidentsRepo{Path: path}
	records, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].PrimaryCategory != "Dropped Objects" || records[0].SeverityLevel != 2 {
		t.Fatalf("record 0 = %+v", records[0])
	}
	// field yang absen tinggal zero value
	if records[1].Region != "" || records[1].SeverityLevel != 0 || !records[1].IsLCV {
		t.Fatalf("record 1 = %+v", records[1])
	}
}

func TestFetchAllMissingFile(t *testing.T) {
	repo := &IncidentsRepo{Path: "/nonexistent/incidents.json"}
	if _, err := repo.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFetchAllMalformedJSON(t *testing.T) {
	repo := &IncidentsRepo{Path: writeDataset(t, `{"not":"an array"`)}
	if _, err := repo.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for malformed dataset")
	}
}
