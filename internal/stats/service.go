// internal/stats/service.go
// Facade statistik: filter sekali, fan-out ke semua reducer, fan-in jadi Bundle.
// Hasil di-memoize per filter key untuk TTL tertentu.

package stats

import (
	"sort"

	"nearmiss-api/internal/incident"
)

const topCategoriesLimit = 15

// Bundle adalah gabungan seluruh view statistik untuk satu konteks filter.
type Bundle struct {
	Overview          Overview         `json:"overview"`
	Severity          []SeverityBucket `json:"severity"`
	Trends            []TrendPoint     `json:"trends"`
	Categories        []CategoryCount  `json:"categories"`
	Regions           []RegionCount    `json:"regions"`
	BehaviorCondition []BehaviorBucket `json:"behaviorCondition"`
	WeeklyHeatmap     []WeekCount      `json:"weeklyHeatmap"`
	ActionCauses      []CauseCount     `json:"actionCauses"`
}

// FilterOptions adalah distinct value per field untuk dropdown FE.
type FilterOptions struct {
	Years          []int    `json:"years"`
	Months         []int    `json:"months"`
	Regions        []string `json:"regions"`
	Categories     []string `json:"categories"`
	Jobs           []string `json:"jobs"`
	SeverityLevels []int    `json:"severityLevels"`
}

// Summary adalah konteks ringkas untuk layer AI: overview + top kategori +
// trend terakhir.
type Summary struct {
	Stats         Overview        `json:"stats"`
	TopCategories []CategoryCount `json:"topCategories"`
	RecentTrends  []TrendPoint    `json:"recentTrends"`
}

type Service struct {
	store *incident.Store
	cache *Cache
}

func NewService(store *incident.Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

// Filter menerapkan satu set constraint ke koleksi penuh.
func (s *Service) Filter(f incident.Filter) []incident.Incident {
	return f.Apply(s.store.All())
}

// Statistics menghitung (atau mengambil dari cache) Bundle lengkap untuk
// satu filter. Semua reducer jalan atas satu slice hasil filter yang sama,
// tidak ada re-filter per view.
func (s *Service) Statistics(f incident.Filter) (Bundle, bool) {
	key := "stats:" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		if b, ok := v.(Bundle); ok {
			return b, true
		}
	}

	data := s.Filter(f)
	b := Bundle{
		Overview:          OverviewStats(data),
		Severity:          SeverityDistribution(data),
		Trends:            MonthlyTrends(data),
		Categories:        TopCategories(data, topCategoriesLimit),
		Regions:           RegionalDistribution(data),
		BehaviorCondition: BehaviorConditionBreakdown(data),
		WeeklyHeatmap:     WeeklyHeatmap(data),
		ActionCauses:      ActionCauseBreakdown(data),
	}
	s.cache.Set(key, b)
	return b, false
}

// Overview seperti Statistics tapi hanya view overview, dengan cache key sendiri.
func (s *Service) Overview(f incident.Filter) (Overview, bool) {
	key := "overview:" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		if o, ok := v.(Overview); ok {
			return o, true
		}
	}

	o := OverviewStats(s.Filter(f))
	s.cache.Set(key, o)
	return o, false
}

// Options mengembalikan pilihan filter: distinct non-empty value per field
// atas koleksi penuh (tanpa filter), sorted ascending. Months dan
// severityLevels adalah range tetap.
func (s *Service) Options() (FilterOptions, bool) {
	const key = "filter_options"
	if v, ok := s.cache.Get(key); ok {
		if o, ok := v.(FilterOptions); ok {
			return o, true
		}
	}

	all := s.store.All()

	years := make(map[int]struct{})
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	jobs := make(map[string]struct{})
	for _, rec := range all {
		if rec.Year != 0 {
			years[rec.Year] = struct{}{}
		}
		if rec.Region != "" {
			regions[rec.Region] = struct{}{}
		}
		if rec.PrimaryCategory != "" {
			categories[rec.PrimaryCategory] = struct{}{}
		}
		if rec.Job != "" {
			jobs[rec.Job] = struct{}{}
		}
	}

	o := FilterOptions{
		Years:          sortedInts(years),
		Months:         []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Regions:        sortedStrings(regions),
		Categories:     sortedStrings(categories),
		Jobs:           sortedStrings(jobs),
		SeverityLevels: []int{0, 1, 2, 3, 4},
	}
	s.cache.Set(key, o)
	return o, false
}

// DataSummary menyusun konteks data untuk prompt AI: overview, top-5
// kategori, dan 3 trend point terakhir.
func (s *Service) DataSummary() Summary {
	all := s.store.All()
	trends := MonthlyTrends(all)
	if len(trends) > 3 {
		trends = trends[len(trends)-3:]
	}
	return Summary{
		Stats:         OverviewStats(all),
		TopCategories: TopCategories(all, 5),
		RecentTrends:  trends,
	}
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
