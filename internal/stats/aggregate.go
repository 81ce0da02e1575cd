// internal/stats/aggregate.go
// Library agregasi: reducer murni atas koleksi insiden.
// Semua fungsi hanya membaca input dan mengalokasikan hasil baru,
// aman dipanggil paralel atas koleksi yang sama.

package stats

import (
	"fmt"
	"sort"
	"strconv"

	"nearmiss-api/internal/incident"
)

type SeverityBucket struct {
	Level int    `json:"level"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

type TrendPoint struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Count       int    `json:"count"`
	AvgSeverity string `json:"avgSeverity"`
	Label       string `json:"label"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

type BehaviorBucket struct {
	Month           string `json:"month"` // "YYYY-MM"
	Behavior        int    `json:"Behavior"`
	UnsafeCondition int    `json:"Unsafe Condition"`
	Unknown         int    `json:"Unknown"`
}

type WeekCount struct {
	Week  int `json:"week"`
	Count int `json:"count"`
}

type CauseCount struct {
	Cause string `json:"cause"`
	Count int    `json:"count"`
}

type Overview struct {
	TotalIncidents   int    `json:"totalIncidents"`
	AvgSeverity      string `json:"avgSeverity"`
	LCVIncidents     int    `json:"lcvIncidents"`
	LCVPercentage    string `json:"lcvPercentage"`
	UniqueProjects   int    `json:"uniqueProjects"`
	UniqueLocations  int    `json:"uniqueLocations"`
	TopCategory      string `json:"topCategory"`
	TopCategoryCount int    `json:"topCategoryCount"`
}

// fieldCounts adalah map count yang mempertahankan urutan insert.
// Urutan first-seen ini yang menentukan tie-break semua ranking
// "sort by count desc" (sort stabil, nilai seri tetap di urutan kemunculan).
type fieldCounts struct {
	keys   []string
	counts map[string]int
}

func newFieldCounts() *fieldCounts {
	return &fieldCounts{counts: make(map[string]int)}
}

func (fc *fieldCounts) add(key string) {
	if key == "" {
		key = "Unknown"
	}
	if _, seen := fc.counts[key]; !seen {
		fc.keys = append(fc.keys, key)
	}
	fc.counts[key]++
}

// CountByField menghitung kemunculan nilai sebuah field; nilai kosong
// masuk ke sentinel "Unknown". Fondasi untuk sebagian besar view.
func CountByField(records []incident.Incident, field func(incident.Incident) string) *fieldCounts {
	fc := newFieldCounts()
	for _, rec := range records {
		fc.add(field(rec))
	}
	return fc
}

// SeverityDistribution mengelompokkan per severity level, ascending by level.
// Level yang tidak muncul tidak di-zero-fill.
func SeverityDistribution(records []incident.Incident) []SeverityBucket {
	fc := CountByField(records, func(r incident.Incident) string {
		return strconv.Itoa(r.SeverityLevel)
	})

	out := make([]SeverityBucket, 0, len(fc.keys))
	for _, k := range fc.keys {
		level, _ := strconv.Atoi(k)
		out = append(out, SeverityBucket{
			Level: level,
			Count: fc.counts[k],
			Label: incident.SeverityLabel(level),
		})
	}
	// sort numerik, bukan lexicographic atas string level
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Unknown %d", year)
	}
	return fmt.Sprintf("%s %d", monthAbbrev[month-1], year)
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// MonthlyTrends mengelompokkan per (year, month): count + rata-rata severity.
// Urutan final ascending by (year, month) sebagai integer.
func MonthlyTrends(records []incident.Incident) []TrendPoint {
	type bucket struct {
		year, month, count, severitySum int
	}
	keys := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		k := monthKey(rec.Year, rec.Month)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{year: rec.Year, month: rec.Month}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.count++
		b.severitySum += rec.SeverityLevel
	}

	out := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		avg := "0.00"
		if b.count > 0 {
			avg = fmt.Sprintf("%.2f", float64(b.severitySum)/float64(b.count))
		}
		out = append(out, TrendPoint{
			Year:        b.year,
			Month:       b.month,
			Count:       b.count,
			AvgSeverity: avg,
			Label:       monthLabel(b.month, b.year),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// TopCategories me-ranking primary_category desc by count, entri kosong
// dan "Unknown" dibuang, dipotong ke limit. limit <= 0 berarti kosong.
func TopCategories(records []incident.Incident, limit int) []CategoryCount {
	fc := CountByField(records, func(r incident.Incident) string { return r.PrimaryCategory })

	out := make([]CategoryCount, 0, len(fc.keys))
	for _, k := range fc.keys {
		if k == "Unknown" {
			continue
		}
		out = append(out, CategoryCount{Category: k, Count: fc.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RegionalDistribution me-ranking region desc by count.
// Berbeda dari kategori: region "Unknown" ikut dihitung.
func RegionalDistribution(records []incident.Incident) []RegionCount {
	fc := CountByField(records, func(r incident.Incident) string { return r.Region })

	out := make([]RegionCount, 0, len(fc.keys))
	for _, k := range fc.keys {
		out = append(out, RegionCount{Region: k, Count: fc.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// BehaviorConditionBreakdown menghitung per bulan berapa insiden bertipe
// Behavior vs Unsafe Condition vs Unknown. Key bulan "YYYY-MM" zero-padded,
// diurutkan lexicographic (== kronologis untuk tahun 4 digit).
func BehaviorConditionBreakdown(records []incident.Incident) []BehaviorBucket {
	keys := make([]string, 0)
	buckets := make(map[string]*BehaviorBucket)

	for _, rec := range records {
		k := monthKey(rec.Year, rec.Month)
		b, ok := buckets[k]
		if !ok {
			b = &BehaviorBucket{Month: k}
			buckets[k] = b
			keys = append(keys, k)
		}
		switch rec.UnsafeConditionOrBehavior {
		case "Behavior":
			b.Behavior++
		case "Unsafe Condition":
			b.UnsafeCondition++
		default:
			b.Unknown++
		}
	}

	sort.Strings(keys)
	out := make([]BehaviorBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}

// WeeklyHeatmap menghitung insiden per nomor minggu, ascending by week.
func WeeklyHeatmap(records []incident.Incident) []WeekCount {
	fc := CountByField(records, func(r incident.Incident) string {
		return strconv.Itoa(r.Week)
	})

	out := make([]WeekCount, 0, len(fc.keys))
	for _, k := range fc.keys {
		week, _ := strconv.Atoi(k)
		out = append(out, WeekCount{Week: week, Count: fc.counts[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// ActionCauseBreakdown me-ranking action_cause desc by count, tanpa limit,
// entri kosong/"Unknown" dibuang (kebijakan sama dengan TopCategories).
func ActionCauseBreakdown(records []incident.Incident) []CauseCount {
	fc := CountByField(records, func(r incident.Incident) string { return r.ActionCause })

	out := make([]CauseCount, 0, len(fc.keys))
	for _, k := range fc.keys {
		if k == "Unknown" {
			continue
		}
		out = append(out, CauseCount{Cause: k, Count: fc.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// OverviewStats merangkum satu koleksi: total, rata-rata severity, LCV,
// jumlah project/lokasi unik, dan kategori terbanyak.
// Koleksi kosong menghasilkan overview nol ("0.00"/"0.0"/"N/A"), bukan NaN.
// Tie-break topCategory: first-seen-wins, mengikuti urutan insert grouping.
func OverviewStats(records []incident.Incident) Overview {
	total := len(records)
	if total == 0 {
		return Overview{AvgSeverity: "0.00", LCVPercentage: "0.0", TopCategory: "N/A"}
	}

	var severitySum, lcv int
	projects := make(map[string]struct{})
	locations := make(map[string]struct{})
	for _, rec := range records {
		severitySum += rec.SeverityLevel
		if rec.IsLCV {
			lcv++
		}
		projects[rec.Job] = struct{}{}
		locations[rec.Location] = struct{}{}
	}

	// kategori terbanyak; "Unknown" ikut dihitung di sini, hanya string
	// kosong yang dibuang (beda kebijakan dengan TopCategories)
	fc := CountByField(records, func(r incident.Incident) string { return r.PrimaryCategory })
	topCategory := "N/A"
	topCount := 0
	for _, k := range fc.keys {
		if fc.counts[k] > topCount {
			topCategory = k
			topCount = fc.counts[k]
		}
	}

	return Overview{
		TotalIncidents:   total,
		AvgSeverity:      fmt.Sprintf("%.2f", float64(severitySum)/float64(total)),
		LCVIncidents:     lcv,
		LCVPercentage:    fmt.Sprintf("%.1f", float64(lcv)/float64(total)*100),
		UniqueProjects:   len(projects),
		UniqueLocations:  len(locations),
		TopCategory:      topCategory,
		TopCategoryCount: topCount,
	}
}
