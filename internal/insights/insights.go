// internal/insights/insights.go
// Strategi insight: varian remote-model dan varian rule-based.
// Core statistik tidak tahu varian mana yang aktif.

package insights

import (
	"context"

	"nearmiss-api/internal/stats"
)

// Generator menghasilkan insight naratif dari ringkasan data.
type Generator interface {
	// Available true bila backend model eksternal siap dipakai.
	Available() bool

	// Generate menghasilkan 3-5 kalimat insight dari ringkasan data.
	Generate(ctx context.Context, s stats.Summary) ([]string, error)

	// Answer menjawab pertanyaan bebas user dengan konteks ringkasan data.
	Answer(ctx context.Context, question string, s stats.Summary) (string, error)
}
