package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-life-planner/pkg/groq"
)

const (
	intentCreate   = "create"
	intentQuestion = "question"
)

const intentPrompt = `You are an intent classifier for a personal schedule assistant.
Classify the user message as one of:
- "create": the user wants to schedule, book or add a commitment
- "question": the user asks about their schedule or anything else
Respond with JSON only: {"intent": "create"} or {"intent": "question"}`

const extractPromptFormat = `You are a scheduling assistant. Extract commitment fields from the user message.
Current time: %s (timezone %s).
Respond with JSON only, using null for unknown fields:
{"title": string, "type": one of class|hackathon|gym|social|exam or null, "location": string or null, "start_time": RFC3339 string or null, "end_time": RFC3339 string or null, "duration_minutes": number or null}`

// llmFields is the JSON shape the extraction prompt asks for.
type llmFields struct {
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Location        string     `json:"location"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
}

// classifyIntent asks the LLM to route the message. Falls back to a local
// heuristic when the LLM is unavailable: messages that parse with a concrete
// start time are treated as creation requests.
func (uc *implUseCase) classifyIntent(ctx context.Context, message string, hasStartTime bool) string {
	if uc.llm == nil {
		return fallbackIntent(hasStartTime)
	}

	resp, err := uc.llm.GenerateContent(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: intentPrompt},
			{Role: "user", Content: message},
		},
		Temperature:    0,
		MaxTokens:      32,
		ResponseFormat: &groq.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		uc.l.Warnf(ctx, "classifyIntent: llm failed, using heuristic: %v", err)
		return fallbackIntent(hasStartTime)
	}

	raw, ok := extractJSON(resp.Text())
	if !ok {
		return fallbackIntent(hasStartTime)
	}

	var parsed struct {
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fallbackIntent(hasStartTime)
	}

	switch parsed.Intent {
	case intentCreate, intentQuestion:
		return parsed.Intent
	default:
		return fallbackIntent(hasStartTime)
	}
}

func fallbackIntent(hasStartTime bool) string {
	if hasStartTime {
		return intentCreate
	}
	return intentQuestion
}

// extractFieldsWithLLM asks the LLM for structured commitment fields.
// Returns nil when the LLM is unavailable or its output is unusable; the
// caller falls back to the local parser.
func (uc *implUseCase) extractFieldsWithLLM(ctx context.Context, message string, now time.Time) *llmFields {
	if uc.llm == nil {
		return nil
	}

	prompt := fmt.Sprintf(extractPromptFormat, now.Format(time.RFC3339), uc.dates.Location().String())
	resp, err := uc.llm.GenerateContent(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: message},
		},
		Temperature:    0,
		MaxTokens:      256,
		ResponseFormat: &groq.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		uc.l.Warnf(ctx, "extractFieldsWithLLM: llm failed: %v", err)
		return nil
	}

	raw, ok := extractJSON(resp.Text())
	if !ok {
		uc.l.Warnf(ctx, "extractFieldsWithLLM: no JSON object in llm output")
		return nil
	}

	var fields llmFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		uc.l.Warnf(ctx, "extractFieldsWithLLM: unmarshal failed: %v", err)
		return nil
	}

	return &fields
}

// extractJSON recovers a JSON object from LLM output that may be wrapped in
// markdown fences or surrounded by prose. It finds the first '{' and returns
// the substring up to its balanced closing brace.
func extractJSON(raw string) (string, bool) {
	s := strings.TrimSpace(raw)

	// Strip markdown code fences.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
