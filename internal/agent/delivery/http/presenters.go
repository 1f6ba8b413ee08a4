package http

import (
	"time"

	"ai-life-planner/internal/agent"
	"ai-life-planner/internal/model"
)

// --- Request DTOs ---

type respondReq struct {
	Message string     `json:"message" binding:"required,min=1,max=2000"`
	Now     *time.Time `json:"now"` // optional reference time, defaults to server clock
}

func (r respondReq) validate() error { return nil }

func (r respondReq) toInput(userID string) agent.RespondInput {
	return agent.RespondInput{
		UserID:  userID,
		Message: r.Message,
		Now:     r.Now,
	}
}

// --- Response DTOs ---

type commitmentResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
}

func newCommitmentResp(c model.Commitment) commitmentResp {
	return commitmentResp{
		ID:        c.ID,
		Title:     c.Title,
		Type:      string(c.Type),
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Location:  c.Location,
	}
}

type slotResp struct {
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason"`
}

// respondResp is the tagged-union agent reply. Only the fields matching the
// type carry data.
type respondResp struct {
	Type         string           `json:"type"`
	Message      string           `json:"message"`
	Commitment   *commitmentResp  `json:"commitment,omitempty"`
	Priority     string           `json:"priority,omitempty"`
	Conflicts    []commitmentResp `json:"conflicts,omitempty"`
	Alternatives []slotResp       `json:"alternatives,omitempty"`
}

func (h *handler) newRespondResp(out agent.RespondOutput) respondResp {
	resp := respondResp{
		Type:     string(out.Type),
		Message:  out.Message,
		Priority: string(out.Priority),
	}

	if out.Commitment != nil {
		c := newCommitmentResp(*out.Commitment)
		resp.Commitment = &c
	}
	for _, c := range out.Conflicts {
		resp.Conflicts = append(resp.Conflicts, newCommitmentResp(c))
	}
	for _, s := range out.Alternatives {
		resp.Alternatives = append(resp.Alternatives, slotResp{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Confidence: s.Confidence,
			Reason:     s.Reason,
		})
	}

	return resp
}
