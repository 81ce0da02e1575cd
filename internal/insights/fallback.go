// internal/insights/fallback.go
// Insight rule-based deterministik, dipakai saat LLM tidak tersedia

package insights

import (
	"context"
	"fmt"
	"strconv"

	"nearmiss-api/internal/stats"
	"nearmiss-api/internal/util"
)

// Ambang kebijakan insight.
const (
	lcvWarnPercent   = 10.0 // LCV di atas ini = intervensi
	severityWarnAvg  = 2.5  // rata-rata severity di atas ini = warning
	trendDeltaWarnPc = 10.0 // perubahan MoM di atas ±ini layak disebut
)

// RuleGenerator menghasilkan insight tanpa model eksternal.
type RuleGenerator struct{}

func (RuleGenerator) Available() bool { return false }

// Answer tidak didukung tanpa model eksternal.
func (RuleGenerator) Answer(ctx context.Context, question string, s stats.Summary) (string, error) {
	return "", util.Internal("AI service is not configured")
}

// Generate menyusun insight dari ambang tetap: porsi kategori teratas,
// persentase LCV, rata-rata severity, dan delta count bulan-ke-bulan.
func (RuleGenerator) Generate(ctx context.Context, s stats.Summary) ([]string, error) {
	var out []string

	if len(s.TopCategories) > 0 && s.Stats.TotalIncidents > 0 {
		top := s.TopCategories[0]
		share := float64(top.Count) / float64(s.Stats.TotalIncidents) * 100
		out = append(out, fmt.Sprintf(
			"%s accounts for %.1f%% of all incidents - prioritize safety measures in this area",
			top.Category, share))
	}

	lcvPct, _ := strconv.ParseFloat(s.Stats.LCVPercentage, 64)
	if lcvPct > lcvWarnPercent {
		out = append(out, fmt.Sprintf(
			"%s%% of incidents are life-changing violations - immediate intervention required",
			s.Stats.LCVPercentage))
	} else {
		out = append(out, fmt.Sprintf(
			"Life-changing violations are at %s%% - below critical threshold",
			s.Stats.LCVPercentage))
	}

	avgSev, _ := strconv.ParseFloat(s.Stats.AvgSeverity, 64)
	if avgSev > severityWarnAvg {
		out = append(out, fmt.Sprintf(
			"Average severity is %s/4 - incidents are trending toward higher risk levels",
			s.Stats.AvgSeverity))
	} else {
		out = append(out, fmt.Sprintf(
			"Average severity is %s/4 - risk levels are manageable",
			s.Stats.AvgSeverity))
	}

	if n := len(s.RecentTrends); n >= 2 {
		recent := s.RecentTrends[n-1]
		previous := s.RecentTrends[n-2]
		if previous.Count > 0 {
			change := float64(recent.Count-previous.Count) / float64(previous.Count) * 100
			if change > trendDeltaWarnPc {
				out = append(out, fmt.Sprintf(
					"Incidents increased %.1f%% in %s compared to %s",
					change, recent.Label, previous.Label))
			} else if change < -trendDeltaWarnPc {
				out = append(out, fmt.Sprintf(
					"Incidents decreased %.1f%% in %s - safety measures are working",
					-change, recent.Label))
			}
		}
	}

	return out, nil
}
