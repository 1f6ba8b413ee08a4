package usecase

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"
)

// ExportICS renders all of the user's commitments as an iCalendar feed.
func (uc *implUseCase) ExportICS(ctx context.Context, userID string) ([]byte, error) {
	events, err := uc.loadEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ai-life-planner//commitments//EN")

	now := uc.now()
	for _, c := range events {
		ev := cal.AddEvent(c.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(c.StartTime)
		ev.SetEndAt(c.EndTime)
		ev.SetSummary(c.Title)
		if c.Location != "" {
			ev.SetLocation(c.Location)
		}
		if c.Type != "" {
			ev.SetDescription(fmt.Sprintf("type: %s", c.Type))
		}
	}

	return []byte(cal.Serialize()), nil
}
