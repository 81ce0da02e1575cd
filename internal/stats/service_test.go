// internal/stats/service_test.go

package stats

import (
	"context"
	"net/url"
	"testing"
	"time"

	"nearmiss-api/internal/incident"
)

type sliceSource []incident.Incident

func (s sliceSource) FetchAll(ctx context.Context) ([]incident.Incident, error) {
	return s, nil
}

func newTestService(t *testing.T, records []incident.Incident) *Service {
	t.Helper()
	store, err := incident.NewStore(context.Background(), sliceSource(records))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return NewService(store, NewCache(10*time.Minute))
}

func TestStatisticsBundleComplete(t *testing.T) {
	svc := newTestService(t, manyRecords())

	b, cached := svc.Statistics(incident.Filter{})
	if cached {
		t.Fatal("first call must be a cache miss")
	}
	if b.Overview.TotalIncidents != 5 {
		t.Fatalf("overview total = %d", b.Overview.TotalIncidents)
	}
	if len(b.Severity) == 0 || len(b.Trends) == 0 || len(b.Categories) == 0 ||
		len(b.Regions) == 0 || len(b.BehaviorCondition) == 0 ||
		len(b.WeeklyHeatmap) == 0 || len(b.ActionCauses) == 0 {
		t.Fatalf("bundle has empty views: %+v", b)
	}
}

// Filter diterapkan sekali untuk semua view: setiap view melihat subset yang sama.
func TestStatisticsFilterOnce(t *testing.T) {
	svc := newTestService(t, manyRecords())
	year := 2024

	b, _ := svc.Statistics(incident.Filter{Year: &year})
	if b.Overview.TotalIncidents != 4 {
		t.Fatalf("filtered overview total = %d", b.Overview.TotalIncidents)
	}
	sum := 0
	for _, s := range b.Severity {
		sum += s.Count
	}
	if sum != 4 {
		t.Fatalf("severity counts %d != filtered total 4", sum)
	}
	for _, tp := range b.Trends {
		if tp.Year != 2024 {
			t.Fatalf("unfiltered year leaked into trends: %+v", tp)
		}
	}
}

// Dua filter ekuivalen yang dibangun dari urutan param berbeda harus
// kena entry cache yang sama.
func TestStatisticsCacheHitForEquivalentFilters(t *testing.T) {
	svc := newTestService(t, manyRecords())

	q1, _ := url.ParseQuery("year=2024&region=East")
	q2, _ := url.ParseQuery("region=East&year=2024")
	f1, _ := incident.ParseFilter(q1)
	f2, _ := incident.ParseFilter(q2)

	if _, cached := svc.Statistics(f1); cached {
		t.Fatal("first call should miss")
	}
	if _, cached := svc.Statistics(f2); !cached {
		t.Fatal("equivalent filter should hit the same cache entry")
	}
}

func TestStatisticsEmptyFilteredSet(t *testing.T) {
	svc := newTestService(t, manyRecords())
	year := 1999

	b, _ := svc.Statistics(incident.Filter{Year: &year})
	if b.Overview.TotalIncidents != 0 || b.Overview.AvgSeverity != "0.00" {
		t.Fatalf("empty-set overview = %+v", b.Overview)
	}
	if len(b.Severity) != 0 || len(b.Trends) != 0 {
		t.Fatalf("empty set should give empty views: %+v", b)
	}
}

func TestOverviewSeparateCacheKey(t *testing.T) {
	svc := newTestService(t, manyRecords())

	if _, cached := svc.Overview(incident.Filter{}); cached {
		t.Fatal("first overview call should miss")
	}
	if _, cached := svc.Overview(incident.Filter{}); !cached {
		t.Fatal("second overview call should hit")
	}
	// bundle dan overview pakai key berbeda
	if _, cached := svc.Statistics(incident.Filter{}); cached {
		t.Fatal("stats bundle must not reuse the overview entry")
	}
}

func TestOptions(t *testing.T) {
	svc := newTestService(t, manyRecords())

	o, _ := svc.Options()
	if len(o.Years) != 2 || o.Years[0] != 2023 || o.Years[1] != 2024 {
		t.Fatalf("years = %v", o.Years)
	}
	if len(o.Months) != 12 || len(o.SeverityLevels) != 5 {
		t.Fatalf("fixed ranges wrong: months=%d severities=%d", len(o.Months), len(o.SeverityLevels))
	}
	// hanya nilai non-empty, sorted ascending
	if len(o.Regions) != 2 || o.Regions[0] != "East" || o.Regions[1] != "West" {
		t.Fatalf("regions = %v", o.Regions)
	}
	if len(o.Categories) != 3 {
		t.Fatalf("categories = %v", o.Categories)
	}

	if _, cached := svc.Options(); !cached {
		t.Fatal("options should be cached on second call")
	}
}

func TestDataSummary(t *testing.T) {
	svc := newTestService(t, manyRecords())

	s := svc.DataSummary()
	if s.Stats.TotalIncidents != 5 {
		t.Fatalf("summary total = %d", s.Stats.TotalIncidents)
	}
	if len(s.TopCategories) == 0 || len(s.TopCategories) > 5 {
		t.Fatalf("top categories = %v", s.TopCategories)
	}
	if len(s.RecentTrends) != 3 {
		t.Fatalf("recent trends = %d, want last 3", len(s.RecentTrends))
	}
	if s.RecentTrends[2].Label != "Feb 2024" {
		t.Fatalf("last trend = %+v", s.RecentTrends[2])
	}
}
