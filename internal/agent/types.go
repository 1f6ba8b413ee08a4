package agent

import (
	"time"

	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
)

// ResponseType tags the agent's reply. Exactly one shape per type:
// creation_success carries the new commitment, conflict carries the
// overlapping events and alternatives, answer and error carry text only.
type ResponseType string

const (
	TypeCreationSuccess ResponseType = "creation_success"
	TypeAnswer          ResponseType = "answer"
	TypeConflict        ResponseType = "conflict"
	TypeError           ResponseType = "error"
)

// RespondInput carries one user message to the agent. Now is the reference
// timestamp; when nil the server clock is used.
type RespondInput struct {
	UserID  string
	Message string
	Now     *time.Time
}

// RespondOutput is the agent's tagged-union reply.
type RespondOutput struct {
	Type    ResponseType
	Message string

	// creation_success
	Commitment *model.Commitment
	Priority   model.Priority

	// conflict
	Conflicts    []model.Commitment
	Alternatives []schedule.SlotSuggestion
}
