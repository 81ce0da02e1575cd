// internal/insights/openai.go
// Varian insight berbasis model remote; fallback ke rule-based saat gagal

package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nearmiss-api/internal/llm"
	"nearmiss-api/internal/stats"
)

// ModelGenerator membungkus client LLM; setiap kegagalan (call error,
// output tidak bisa diparse) jatuh ke generator rule-based.
type ModelGenerator struct {
	Client   llm.Client
	Fallback RuleGenerator
}

func (g *ModelGenerator) Available() bool { return g.Client != nil }

func (g *ModelGenerator) Answer(ctx context.Context, question string, s stats.Summary) (string, error) {
	if g.Client == nil {
		return g.Fallback.Answer(ctx, question, s)
	}

	system := "You are a construction safety analyst. Answer clearly and " +
		"data-driven, based only on the dataset summary you are given. If the " +
		"summary is not enough, say what additional analysis would help."
	return g.Client.Answer(ctx, system, dataContext(s)+"\n\nUser Question: "+question)
}

func (g *ModelGenerator) Generate(ctx context.Context, s stats.Summary) ([]string, error) {
	if g.Client == nil {
		return g.Fallback.Generate(ctx, s)
	}

	system := "You are a construction safety analyst. Return ONLY a JSON array " +
		"of 3-5 insight strings, each one concise sentence with concrete numbers " +
		"and an actionable recommendation."
	raw, err := g.Client.Answer(ctx, system, dataContext(s))
	if err != nil {
		return g.Fallback.Generate(ctx, s)
	}

	var parsed []string
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &parsed); err != nil || len(parsed) == 0 {
		return g.Fallback.Generate(ctx, s)
	}
	if len(parsed) > 5 {
		parsed = parsed[:5]
	}
	return parsed, nil
}

// dataContext menyusun ringkasan dataset jadi konteks prompt.
func dataContext(s stats.Summary) string {
	var b strings.Builder
	b.WriteString("Near-miss incident dataset summary:\n")
	fmt.Fprintf(&b, "- Total Incidents: %d\n", s.Stats.TotalIncidents)
	fmt.Fprintf(&b, "- Average Severity: %s (scale 0-4)\n", s.Stats.AvgSeverity)
	fmt.Fprintf(&b, "- Life-Changing Violations: %d (%s%%)\n", s.Stats.LCVIncidents, s.Stats.LCVPercentage)
	fmt.Fprintf(&b, "- Projects Covered: %d\n", s.Stats.UniqueProjects)
	fmt.Fprintf(&b, "- Locations: %d\n", s.Stats.UniqueLocations)
	fmt.Fprintf(&b, "- Most Common Category: %s (%d incidents)\n", s.Stats.TopCategory, s.Stats.TopCategoryCount)

	if len(s.TopCategories) > 0 {
		b.WriteString("\nTop Categories:\n")
		for i, c := range s.TopCategories {
			fmt.Fprintf(&b, "%d. %s: %d incidents\n", i+1, c.Category, c.Count)
		}
	}
	if len(s.RecentTrends) > 0 {
		b.WriteString("\nRecent Trends:\n")
		for _, t := range s.RecentTrends {
			fmt.Fprintf(&b, "%s: %d incidents (avg severity %s)\n", t.Label, t.Count, t.AvgSeverity)
		}
	}
	return b.String()
}

// extractJSONArray memotong teks di sekitar array JSON pertama, karena model
// kadang membungkus jawaban dengan penjelasan atau code fence.
func extractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
