// internal/handlers/http/ai_handler.go
// Endpoint AI: tanya-jawab bebas + insight otomatis.
// Varian generator (model remote vs rule-based) ditentukan saat wiring.

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nearmiss-api/internal/insights"
)

var insightGen insights.Generator

func SetInsightGenerator(g insights.Generator) { insightGen = g }

type aiQueryReq struct {
	Question string `json:"question"`
}

// AIQueryHandler: POST /api/ai/query {question}
func AIQueryHandler(w http.ResponseWriter, r *http.Request) {
	if insightGen == nil || statsService == nil {
		writeError(w, http.StatusServiceUnavailable, "AI service not configured")
		return
	}

	var in aiQueryReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	in.Question = strings.TrimSpace(in.Question)
	if in.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	if !insightGen.Available() {
		writeError(w, http.StatusServiceUnavailable,
			"AI service is not configured. Set OPENAI_API_KEY to enable it.")
		return
	}

	ctx := r.Context()
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	answer, err := insightGen.Answer(ctx, in.Question, statsService.DataSummary())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeData(w, map[string]any{
		"question": in.Question,
		"answer":   answer,
	})
}

// AIInsightsHandler: GET /api/ai/insights - insight otomatis;
// selalu 200 karena varian rule-based tidak pernah gagal.
func AIInsightsHandler(w http.ResponseWriter, r *http.Request) {
	if insightGen == nil || statsService == nil {
		writeError(w, http.StatusServiceUnavailable, "AI service not configured")
		return
	}

	ctx := r.Context()
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	list, err := insightGen.Generate(ctx, statsService.DataSummary())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      list,
		"aiEnabled": insightGen.Available(),
	})
}

// AIStatusHandler: GET /api/ai/status
func AIStatusHandler(w http.ResponseWriter, r *http.Request) {
	available := insightGen != nil && insightGen.Available()
	writeData(w, map[string]any{
		"available": available,
		"service":   "OpenAI",
	})
}
