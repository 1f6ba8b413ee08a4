package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/pkg/gcalendar"
)

// Create persists a new commitment. Unless Force is set, overlapping
// commitments block creation and the conflicts plus alternative slots are
// returned alongside ErrConflictDetected.
func (uc *implUseCase) Create(ctx context.Context, input commitment.CreateInput) (commitment.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return commitment.CreateOutput{}, commitment.ErrInvalidPayload
	}
	if input.Type != "" && !input.Type.Valid() {
		return commitment.CreateOutput{}, commitment.ErrInvalidPayload
	}
	if !input.StartTime.Before(input.EndTime) {
		return commitment.CreateOutput{}, commitment.ErrInvalidTimeRange
	}

	events, err := uc.loadEvents(ctx, input.UserID)
	if err != nil {
		return commitment.CreateOutput{}, fmt.Errorf("failed to load commitments: %w", err)
	}

	if !input.Force {
		events = uc.mergeCalendarBusy(ctx, input.StartTime, input.EndTime, events)
		result := schedule.DetectConflicts(input.StartTime, input.EndTime, events)
		if result.HasConflict {
			conflicts := &commitment.CheckConflictsOutput{Result: result}
			duration := int(input.EndTime.Sub(input.StartTime) / time.Minute)
			if alternatives, slotErr := schedule.SuggestSlots(input.StartTime, duration, events, schedule.DefaultMaxSuggestions); slotErr == nil {
				conflicts.Alternatives = alternatives
			}
			uc.l.Infof(ctx, "Create: blocked by %d conflicts user=%s", len(result.ConflictingEvents), input.UserID)
			return commitment.CreateOutput{Conflicts: conflicts}, commitment.ErrConflictDetected
		}
	}

	gcalEventID := uc.tryCreateCalendarEvent(ctx, input)

	created, err := uc.repo.CreateCommitment(ctx, repository.CreateCommitmentOptions{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		Title:           input.Title,
		Type:            input.Type,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Location:        input.Location,
		ReminderMinutes: input.ReminderMinutes,
		GCalEventID:     gcalEventID,
	})
	if err != nil {
		return commitment.CreateOutput{}, fmt.Errorf("failed to create commitment: %w", err)
	}

	uc.invalidateEvents(input.UserID)
	uc.l.Infof(ctx, "Create: created commitment id=%s user=%s title=%q", created.ID, input.UserID, created.Title)

	return commitment.CreateOutput{
		Commitment: created,
		Priority:   schedule.ClassifyPriority(created.Type, created.StartTime, uc.now()),
	}, nil
}

// tryCreateCalendarEvent mirrors the commitment to Google Calendar.
// Returns the event ID, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, input commitment.CreateInput) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.cfg.CalendarID,
		Summary:    input.Title,
		Location:   input.Location,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Timezone:   uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar mirror failed for %q: %v", input.Title, err)
		return ""
	}

	return event.ID
}
