package commitment

import (
	"time"

	"ai-life-planner/internal/commitment/parser"
	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
)

// --- UseCase Inputs ---

// ParseInput carries one free-text phrase to parse. Now is the reference
// timestamp; when nil the server clock is used. Parsing itself never reads
// the clock, so a fixed Now makes the call fully deterministic.
type ParseInput struct {
	UserID  string
	RawText string
	Now     *time.Time
}

type CheckConflictsInput struct {
	UserID    string
	StartTime time.Time
	EndTime   time.Time
}

type SuggestSlotsInput struct {
	UserID          string
	StartTime       time.Time
	DurationMinutes int
	MaxSuggestions  int // 0 means the default
}

type CreateInput struct {
	UserID          string
	Title           string
	Type            model.CommitmentType
	StartTime       time.Time
	EndTime         time.Time
	Location        string
	ReminderMinutes int
	Force           bool // persist even when conflicts exist
}

type ListInput struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type UpdateInput struct {
	ID        string
	UserID    string
	Title     string
	Type      model.CommitmentType
	StartTime *time.Time
	EndTime   *time.Time
	Location  string
}

// --- UseCase Outputs ---

// ParseOutput wraps the parsed result with the product policy flags derived
// from the configured confidence thresholds.
type ParseOutput struct {
	Parsed        parser.ParsedCommitment
	ShowPreview   bool // confidence above the preview threshold
	LowConfidence bool // confidence below the confirm threshold
}

type CheckConflictsOutput struct {
	Result       schedule.ConflictResult
	Alternatives []schedule.SlotSuggestion // populated when conflicts exist
}

type SuggestSlotsOutput struct {
	Suggestions []schedule.SlotSuggestion
}

type PatternsOutput struct {
	Patterns []schedule.Pattern
}

type CreateOutput struct {
	Commitment model.Commitment
	Priority   model.Priority
	// Conflicts is populated when creation was blocked by overlapping
	// commitments so callers can surface them alongside alternatives.
	Conflicts *CheckConflictsOutput
}

type ListOutput struct {
	Commitments []model.Commitment
	Total       int
	Limit       int
	Offset      int
}

type DetailOutput struct {
	Commitment    model.Commitment
	Priority      model.Priority
	TravelMinutes int
}

type UpdateOutput struct {
	Commitment model.Commitment
}
