package http

import (
	"time"

	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Text string     `json:"text" binding:"required,min=1,max=2000"`
	Now  *time.Time `json:"now"` // optional reference time, defaults to server clock
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput(userID string) commitment.ParseInput {
	return commitment.ParseInput{
		UserID:  userID,
		RawText: r.Text,
		Now:     r.Now,
	}
}

// ---

type conflictsReq struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
}

func (r conflictsReq) validate() error { return nil }

func (r conflictsReq) toInput(userID string) commitment.CheckConflictsInput {
	return commitment.CheckConflictsInput{
		UserID:    userID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ---

type slotsReq struct {
	StartTime       time.Time `json:"start_time"       binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
	MaxSuggestions  int       `json:"max_suggestions"  binding:"omitempty,min=1,max=10"`
}

func (r slotsReq) validate() error { return nil }

func (r slotsReq) toInput(userID string) commitment.SuggestSlotsInput {
	return commitment.SuggestSlotsInput{
		UserID:          userID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		MaxSuggestions:  r.MaxSuggestions,
	}
}

// ---

type createReq struct {
	Title           string    `json:"title"            binding:"required,min=1,max=255"`
	Type            string    `json:"type"             binding:"omitempty,oneof=class hackathon gym social exam"`
	StartTime       time.Time `json:"start_time"       binding:"required"`
	EndTime         time.Time `json:"end_time"         binding:"required"`
	Location        string    `json:"location"         binding:"max=255"`
	ReminderMinutes int       `json:"reminder_minutes" binding:"omitempty,min=0,max=1440"`
	Force           bool      `json:"force"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(userID string) commitment.CreateInput {
	return commitment.CreateInput{
		UserID:          userID,
		Title:           r.Title,
		Type:            model.CommitmentType(r.Type),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Location:        r.Location,
		ReminderMinutes: r.ReminderMinutes,
		Force:           r.Force,
	}
}

// ---

type listReq struct {
	From   *time.Time `form:"from"   time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to"     time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int        `form:"limit"`
	Offset int        `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(userID string) commitment.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	input := commitment.ListInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	if r.From != nil {
		input.From = *r.From
	}
	if r.To != nil {
		input.To = *r.To
	}
	return input
}

// ---

type updateReq struct {
	ID        string     `json:"-"` // populated from URI param
	Title     string     `json:"title"      binding:"omitempty,min=1,max=255"`
	Type      string     `json:"type"       binding:"omitempty,oneof=class hackathon gym social exam"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Location  string     `json:"location"   binding:"omitempty,max=255"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(userID string) commitment.UpdateInput {
	return commitment.UpdateInput{
		ID:        r.ID,
		UserID:    userID,
		Title:     r.Title,
		Type:      model.CommitmentType(r.Type),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Location:  r.Location,
	}
}

// --- Response DTOs ---

type commitmentResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Location        string    `json:"location,omitempty"`
	ReminderMinutes int       `json:"reminder_minutes,omitempty"`
	GCalEventID     string    `json:"gcal_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newCommitmentResp(c model.Commitment) commitmentResp {
	return commitmentResp{
		ID:              c.ID,
		Title:           c.Title,
		Type:            string(c.Type),
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		Location:        c.Location,
		ReminderMinutes: c.ReminderMinutes,
		GCalEventID:     c.GCalEventID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type slotResp struct {
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason"`
}

func newSlotResps(slots []schedule.SlotSuggestion) []slotResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = slotResp{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Confidence: s.Confidence,
			Reason:     s.Reason,
		}
	}
	return out
}

type parseResp struct {
	Title           string     `json:"title"`
	Type            string     `json:"type,omitempty"`
	Location        string     `json:"location,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Confidence      float64    `json:"confidence"`
	ShowPreview     bool       `json:"show_preview"`
	LowConfidence   bool       `json:"low_confidence"`
}

func (h *handler) newParseResp(out commitment.ParseOutput) parseResp {
	return parseResp{
		Title:           out.Parsed.Title,
		Type:            string(out.Parsed.Type),
		Location:        out.Parsed.Location,
		StartTime:       out.Parsed.StartTime,
		EndTime:         out.Parsed.EndTime,
		DurationMinutes: out.Parsed.DurationMinutes,
		Confidence:      out.Parsed.Confidence,
		ShowPreview:     out.ShowPreview,
		LowConfidence:   out.LowConfidence,
	}
}

type conflictsResp struct {
	HasConflict  bool             `json:"has_conflict"`
	Conflicts    []commitmentResp `json:"conflicts"`
	Suggestion   string           `json:"suggestion,omitempty"`
	Alternatives []slotResp       `json:"alternatives,omitempty"`
}

func (h *handler) newConflictsResp(out commitment.CheckConflictsOutput) conflictsResp {
	conflicts := make([]commitmentResp, len(out.Result.ConflictingEvents))
	for i, c := range out.Result.ConflictingEvents {
		conflicts[i] = newCommitmentResp(c)
	}
	return conflictsResp{
		HasConflict:  out.Result.HasConflict,
		Conflicts:    conflicts,
		Suggestion:   out.Result.SuggestionText,
		Alternatives: newSlotResps(out.Alternatives),
	}
}

type slotsResp struct {
	Suggestions []slotResp `json:"suggestions"`
}

func (h *handler) newSlotsResp(out commitment.SuggestSlotsOutput) slotsResp {
	return slotsResp{Suggestions: newSlotResps(out.Suggestions)}
}

type patternResp struct {
	Title      string  `json:"title"`
	Type       string  `json:"type,omitempty"`
	Weekday    string  `json:"weekday"`
	Hour       int     `json:"hour"`
	Count      int     `json:"count"`
	Confidence float64 `json:"confidence"`
	RRule      string  `json:"rrule"`
}

type patternsResp struct {
	Patterns []patternResp `json:"patterns"`
}

func (h *handler) newPatternsResp(out commitment.PatternsOutput) patternsResp {
	patterns := make([]patternResp, len(out.Patterns))
	for i, p := range out.Patterns {
		patterns[i] = patternResp{
			Title:      p.Title,
			Type:       string(p.Type),
			Weekday:    p.Weekday.String(),
			Hour:       p.Hour,
			Count:      p.Count,
			Confidence: p.Confidence,
			RRule:      p.RRule,
		}
	}
	return patternsResp{Patterns: patterns}
}

type createResp struct {
	Commitment commitmentResp `json:"commitment"`
	Priority   string         `json:"priority"`
}

func (h *handler) newCreateResp(out commitment.CreateOutput) createResp {
	return createResp{
		Commitment: newCommitmentResp(out.Commitment),
		Priority:   string(out.Priority),
	}
}

type listResp struct {
	Commitments []commitmentResp `json:"commitments"`
	Total       int              `json:"total"`
	Limit       int              `json:"limit"`
	Offset      int              `json:"offset"`
}

func (h *handler) newListResp(out commitment.ListOutput) listResp {
	commitments := make([]commitmentResp, len(out.Commitments))
	for i, c := range out.Commitments {
		commitments[i] = newCommitmentResp(c)
	}
	return listResp{
		Commitments: commitments,
		Total:       out.Total,
		Limit:       out.Limit,
		Offset:      out.Offset,
	}
}

type detailResp struct {
	Commitment    commitmentResp `json:"commitment"`
	Priority      string         `json:"priority"`
	TravelMinutes int            `json:"travel_minutes"`
}

func (h *handler) newDetailResp(out commitment.DetailOutput) detailResp {
	return detailResp{
		Commitment:    newCommitmentResp(out.Commitment),
		Priority:      string(out.Priority),
		TravelMinutes: out.TravelMinutes,
	}
}

type updateResp struct {
	Commitment commitmentResp `json:"commitment"`
}

func (h *handler) newUpdateResp(out commitment.UpdateOutput) updateResp {
	return updateResp{Commitment: newCommitmentResp(out.Commitment)}
}
