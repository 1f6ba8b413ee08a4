package usecase

import (
	"context"
	"time"

	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/model"
	"ai-life-planner/pkg/gcalendar"
)

// Event window fetched for conflict checks, slot suggestions and pattern
// detection. Patterns need history, conflicts need the near future.
const (
	eventWindowPast   = 90 * 24 * time.Hour
	eventWindowFuture = 60 * 24 * time.Hour
)

// now returns the current time in the configured timezone.
func (uc *implUseCase) now() time.Time {
	return time.Now().In(uc.dates.Location())
}

// loadEvents returns the user's commitments around the current time,
// served from the per-user cache when fresh.
func (uc *implUseCase) loadEvents(ctx context.Context, userID string) ([]model.Commitment, error) {
	if cached, ok := uc.events.Get(userID); ok {
		return cached, nil
	}

	now := uc.now()
	commitments, _, err := uc.repo.ListCommitments(ctx, repository.ListCommitmentsOptions{
		UserID: userID,
		From:   now.Add(-eventWindowPast),
		To:     now.Add(eventWindowFuture),
	})
	if err != nil {
		return nil, err
	}

	uc.events.Add(userID, commitments)
	return commitments, nil
}

// invalidateEvents drops the cached window after any mutation.
func (uc *implUseCase) invalidateEvents(userID string) {
	uc.events.Remove(userID)
}

// mergeCalendarBusy appends Google Calendar events overlapping [from, to)
// to the stored commitments so externally-booked time also blocks. Events
// this service mirrored itself are skipped to avoid double counting.
// Lookup failures degrade to the stored list only.
func (uc *implUseCase) mergeCalendarBusy(ctx context.Context, from, to time.Time, events []model.Commitment) []model.Commitment {
	if uc.calendar == nil {
		return events
	}

	external, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar busy lookup failed: %v", err)
		return events
	}

	mirrored := make(map[string]struct{}, len(events))
	for _, c := range events {
		if c.GCalEventID != "" {
			mirrored[c.GCalEventID] = struct{}{}
		}
	}

	extra := make([]model.Commitment, 0, len(external))
	for _, ev := range external {
		if _, ok := mirrored[ev.ID]; ok {
			continue
		}
		if ev.StartTime.IsZero() || ev.EndTime.IsZero() {
			continue
		}
		extra = append(extra, model.Commitment{
			ID:          ev.ID,
			Title:       ev.Summary,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			Location:    ev.Location,
			GCalEventID: ev.ID,
		})
	}
	if len(extra) == 0 {
		return events
	}

	// copy, the stored list may be the cached slice
	merged := make([]model.Commitment, 0, len(events)+len(extra))
	merged = append(merged, events...)
	return append(merged, extra...)
}
