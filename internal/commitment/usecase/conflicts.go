package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/commitment/schedule"
)

// CheckConflicts reports overlaps between a candidate time range and the
// user's existing commitments, including externally booked Google Calendar
// time when the mirror is configured, with alternative slots when any exist.
func (uc *implUseCase) CheckConflicts(ctx context.Context, input commitment.CheckConflictsInput) (commitment.CheckConflictsOutput, error) {
	if !input.StartTime.Before(input.EndTime) {
		return commitment.CheckConflictsOutput{}, commitment.ErrInvalidTimeRange
	}

	events, err := uc.loadEvents(ctx, input.UserID)
	if err != nil {
		return commitment.CheckConflictsOutput{}, fmt.Errorf("failed to load commitments: %w", err)
	}
	events = uc.mergeCalendarBusy(ctx, input.StartTime, input.EndTime, events)

	result := schedule.DetectConflicts(input.StartTime, input.EndTime, events)
	out := commitment.CheckConflictsOutput{Result: result}

	if result.HasConflict {
		duration := int(input.EndTime.Sub(input.StartTime) / time.Minute)
		alternatives, slotErr := schedule.SuggestSlots(input.StartTime, duration, events, schedule.DefaultMaxSuggestions)
		if slotErr != nil {
			uc.l.Warnf(ctx, "CheckConflicts: slot suggestion failed: %v", slotErr)
		} else {
			out.Alternatives = alternatives
		}
	}

	return out, nil
}

// SuggestSlots proposes free slots of the requested duration around the
// desired start time.
func (uc *implUseCase) SuggestSlots(ctx context.Context, input commitment.SuggestSlotsInput) (commitment.SuggestSlotsOutput, error) {
	if input.DurationMinutes <= 0 {
		return commitment.SuggestSlotsOutput{}, commitment.ErrInvalidPayload
	}

	maxSuggestions := input.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = schedule.DefaultMaxSuggestions
	}

	events, err := uc.loadEvents(ctx, input.UserID)
	if err != nil {
		return commitment.SuggestSlotsOutput{}, fmt.Errorf("failed to load commitments: %w", err)
	}

	suggestions, err := schedule.SuggestSlots(input.StartTime, input.DurationMinutes, events, maxSuggestions)
	if err != nil {
		return commitment.SuggestSlotsOutput{}, commitment.ErrInvalidPayload
	}

	return commitment.SuggestSlotsOutput{Suggestions: suggestions}, nil
}

// Patterns surfaces recurring weekly commitments detected in the user's
// history.
func (uc *implUseCase) Patterns(ctx context.Context, userID string) (commitment.PatternsOutput, error) {
	events, err := uc.loadEvents(ctx, userID)
	if err != nil {
		return commitment.PatternsOutput{}, fmt.Errorf("failed to load commitments: %w", err)
	}

	return commitment.PatternsOutput{Patterns: schedule.SurfacedPatterns(events)}, nil
}
