// internal/stats/aggregate_test.go

package stats

import (
	"testing"

	"nearmiss-api/internal/incident"
)

// Dua record dari skenario dashboard standar.
func twoRecords() []incident.Incident {
	return []incident.Incident{
		{SeverityLevel: 2, PrimaryCategory: "Dropped Objects", Region: "East", Year: 2024, Month: 1, Week: 1, Job: "A", Location: "Site1", UnsafeConditionOrBehavior: "Behavior"},
		{SeverityLevel: 4, PrimaryCategory: "Dropped Objects", Region: "West", Year: 2024, Month: 1, Week: 1, Job: "B", Location: "Site2", UnsafeConditionOrBehavior: "Unsafe Condition", IsLCV: true},
	}
}

func manyRecords() []incident.Incident {
	return []incident.Incident{
		{SeverityLevel: 1, PrimaryCategory: "Dropped Objects", ActionCause: "Slip/Trip", Region: "East", Year: 2024, Month: 2, Week: 6, Job: "A", Location: "Site1", UnsafeConditionOrBehavior: "Behavior"},
		{SeverityLevel: 3, PrimaryCategory: "Energy Isolation", ActionCause: "Dropped Object", Region: "West", Year: 2024, Month: 1, Week: 2, Job: "B", Location: "Site2"},
		{SeverityLevel: 2, PrimaryCategory: "Work at Height", ActionCause: "Slip/Trip", Region: "East", Year: 2023, Month: 12, Week: 50, Job: "A", Location: "Site1", UnsafeConditionOrBehavior: "Unsafe Condition"},
		{SeverityLevel: 0, PrimaryCategory: "", ActionCause: "", Region: "", Year: 2024, Month: 1, Week: 2, Job: "C", Location: "Site3"},
		{SeverityLevel: 4, PrimaryCategory: "Dropped Objects", ActionCause: "Falling Tools", Region: "East", Year: 2024, Month: 2, Week: 7, Job: "B", Location: "Site2", IsLCV: true, UnsafeConditionOrBehavior: "Behavior"},
	}
}

func TestOverviewStatsScenario(t *testing.T) {
	o := OverviewStats(twoRecords())

	if o.TotalIncidents != 2 {
		t.Fatalf("totalIncidents = %d", o.TotalIncidents)
	}
	if o.AvgSeverity != "3.00" {
		t.Fatalf("avgSeverity = %q, want 3.00", o.AvgSeverity)
	}
	if o.LCVIncidents != 1 || o.LCVPercentage != "50.0" {
		t.Fatalf("lcv = %d (%s%%)", o.LCVIncidents, o.LCVPercentage)
	}
	if o.UniqueProjects != 2 || o.UniqueLocations != 2 {
		t.Fatalf("unique projects=%d locations=%d", o.UniqueProjects, o.UniqueLocations)
	}
	if o.TopCategory != "Dropped Objects" || o.TopCategoryCount != 2 {
		t.Fatalf("topCategory = %q (%d)", o.TopCategory, o.TopCategoryCount)
	}
}

// Koleksi kosong menghasilkan overview nol, bukan NaN/divide-by-zero.
func TestOverviewStatsEmpty(t *testing.T) {
	o := OverviewStats(nil)
	if o.TotalIncidents != 0 || o.AvgSeverity != "0.00" || o.LCVPercentage != "0.0" || o.TopCategory != "N/A" {
		t.Fatalf("empty overview = %+v", o)
	}
}

func TestOverviewTopCategoryFirstSeenTieBreak(t *testing.T) {
	records := []incident.Incident{
		{PrimaryCategory: "Beta", Job: "x", Location: "y"},
		{PrimaryCategory: "Alpha", Job: "x", Location: "y"},
		{PrimaryCategory: "Beta", Job: "x", Location: "y"},
		{PrimaryCategory: "Alpha", Job: "x", Location: "y"},
	}
	o := OverviewStats(records)
	if o.TopCategory != "Beta" {
		t.Fatalf("tie should go to first-seen category Beta, got %q", o.TopCategory)
	}
}

func TestSeverityDistributionScenario(t *testing.T) {
	d := SeverityDistribution(twoRecords())
	// ascending by level, level yang tidak muncul absen (tidak zero-fill)
	if len(d) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(d))
	}
	if d[0].Level != 2 || d[0].Count != 1 || d[0].Label != "Medium" {
		t.Fatalf("bucket 0 = %+v", d[0])
	}
	if d[1].Level != 4 || d[1].Count != 1 || d[1].Label != "Critical" {
		t.Fatalf("bucket 1 = %+v", d[1])
	}
}

// Hasil countByField mem-partisi input: jumlah count == |R|.
func TestCountsPartitionInput(t *testing.T) {
	records := manyRecords()

	sum := 0
	for _, b := range SeverityDistribution(records) {
		sum += b.Count
	}
	if sum != len(records) {
		t.Fatalf("severity counts sum %d != %d", sum, len(records))
	}

	sum = 0
	for _, b := range RegionalDistribution(records) {
		sum += b.Count
	}
	if sum != len(records) {
		t.Fatalf("region counts sum %d != %d", sum, len(records))
	}

	sum = 0
	for _, b := range WeeklyHeatmap(records) {
		sum += b.Count
	}
	if sum != len(records) {
		t.Fatalf("weekly counts sum %d != %d", sum, len(records))
	}
}

func TestMonthlyTrendsOrderedAndUnique(t *testing.T) {
	trends := MonthlyTrends(manyRecords())

	if len(trends) != 3 {
		t.Fatalf("expected 3 month groups, got %d", len(trends))
	}
	seen := make(map[string]bool)
	for i, tp := range trends {
		key := tp.Label
		if seen[key] {
			t.Fatalf("duplicate month group %s", key)
		}
		seen[key] = true
		if i > 0 {
			prev := trends[i-1]
			if prev.Year > tp.Year || (prev.Year == tp.Year && prev.Month >= tp.Month) {
				t.Fatalf("not ascending at %d: %+v before %+v", i, prev, tp)
			}
		}
	}

	// Dec 2023 harus pertama walau muncul belakangan di input
	if trends[0].Year != 2023 || trends[0].Month != 12 || trends[0].Label != "Dec 2023" {
		t.Fatalf("first trend = %+v", trends[0])
	}
	// Jan 2024: dua record severity 3 dan 0 -> avg 1.50
	if trends[1].Count != 2 || trends[1].AvgSeverity != "1.50" {
		t.Fatalf("jan 2024 trend = %+v", trends[1])
	}
}

func TestTopCategoriesPolicy(t *testing.T) {
	records := manyRecords()

	top := TopCategories(records, 10)
	if len(top) != 3 {
		t.Fatalf("expected 3 named categories, got %d: %v", len(top), top)
	}
	// record dengan kategori kosong tidak boleh muncul
	for _, c := range top {
		if c.Category == "" || c.Category == "Unknown" {
			t.Fatalf("excluded category leaked: %+v", c)
		}
	}
	if top[0].Category != "Dropped Objects" || top[0].Count != 2 {
		t.Fatalf("top category = %+v", top[0])
	}

	if got := TopCategories(records, 1); len(got) != 1 {
		t.Fatalf("limit 1: got %d", len(got))
	}
	if got := TopCategories(records, 0); len(got) != 0 {
		t.Fatalf("limit 0 should be empty, got %d", len(got))
	}
}

func TestTopCategoriesStableTieBreak(t *testing.T) {
	records := []incident.Incident{
		{PrimaryCategory: "Zulu"},
		{PrimaryCategory: "Alpha"},
		{PrimaryCategory: "Mike"},
	}
	top := TopCategories(records, 10)
	want := []string{"Zulu", "Alpha", "Mike"}
	for i, name := range want {
		if top[i].Category != name {
			t.Fatalf("tie order broken at %d: got %q want %q", i, top[i].Category, name)
		}
	}
}

// Region "Unknown" ikut dihitung, beda dengan kebijakan kategori.
func TestRegionalDistributionIncludesUnknown(t *testing.T) {
	regions := RegionalDistribution(manyRecords())

	found := false
	for _, r := range regions {
		if r.Region == "Unknown" {
			found = true
			if r.Count != 1 {
				t.Fatalf("Unknown count = %d", r.Count)
			}
		}
	}
	if !found {
		t.Fatal("Unknown region missing from distribution")
	}
	if regions[0].Region != "East" || regions[0].Count != 3 {
		t.Fatalf("top region = %+v", regions[0])
	}
}

func TestBehaviorConditionBreakdown(t *testing.T) {
	buckets := BehaviorConditionBreakdown(manyRecords())

	if len(buckets) != 3 {
		t.Fatalf("expected 3 month buckets, got %d", len(buckets))
	}
	// lexicographic atas "YYYY-MM" == kronologis
	want := []string{"2023-12", "2024-01", "2024-02"}
	for i, k := range want {
		if buckets[i].Month != k {
			t.Fatalf("bucket %d month = %q, want %q", i, buckets[i].Month, k)
		}
	}

	jan := buckets[1]
	if jan.Behavior != 0 || jan.UnsafeCondition != 0 || jan.Unknown != 2 {
		t.Fatalf("jan 2024 = %+v", jan)
	}
	feb := buckets[2]
	if feb.Behavior != 2 || feb.Unknown != 0 {
		t.Fatalf("feb 2024 = %+v", feb)
	}
}

func TestWeeklyHeatmapAscending(t *testing.T) {
	weeks := WeeklyHeatmap(manyRecords())
	for i := 1; i < len(weeks); i++ {
		if weeks[i-1].Week >= weeks[i].Week {
			t.Fatalf("weeks not strictly ascending: %+v", weeks)
		}
	}
	if weeks[0].Week != 2 || weeks[0].Count != 2 {
		t.Fatalf("first week bucket = %+v", weeks[0])
	}
}

func TestActionCauseBreakdownExcludesUnknownNoLimit(t *testing.T) {
	causes := ActionCauseBreakdown(manyRecords())
	if len(causes) != 3 {
		t.Fatalf("expected 3 named causes, got %d: %v", len(causes), causes)
	}
	if causes[0].Cause != "Slip/Trip" || causes[0].Count != 2 {
		t.Fatalf("top cause = %+v", causes[0])
	}
	for _, c := range causes {
		if c.Cause == "Unknown" {
			t.Fatalf("Unknown cause leaked: %+v", c)
		}
	}
}

func TestSeverityLabelUnknown(t *testing.T) {
	if got := incident.SeverityLabel(9); got != "Unknown" {
		t.Fatalf("label(9) = %q", got)
	}
	if got := incident.SeverityLabel(0); got != "Minimal" {
		t.Fatalf("label(0) = %q", got)
	}
}
