package schedule

import (
	"errors"
	"sort"
	"time"

	"ai-life-planner/internal/model"
)

// SlotSuggestion is one proposed free slot. Suggestions are returned in
// generation order: same-day gaps, then after existing commitments, then the
// next day. Confidence is a fixed per-tier constant, not computed per gap.
type SlotSuggestion struct {
	StartTime  time.Time
	EndTime    time.Time
	Confidence float64
	Reason     string
}

// Per-tier confidence constants.
const (
	ConfidenceSameDayGap    = 0.8
	ConfidenceAfterExisting = 0.7
	ConfidenceNextDay       = 0.6
)

// DefaultMaxSuggestions is the default cap on returned slot suggestions.
const DefaultMaxSuggestions = 3

// The same-day search starts the cursor at 08:00 and the after-commitments
// tier is skipped when the proposed slot would end past 22:00.
const (
	dayStartHour  = 8
	dayCutoffHour = 22
)

// ErrInvalidMaxSuggestions is returned when maxSuggestions is not positive.
var ErrInvalidMaxSuggestions = errors.New("max suggestions must be positive")

// SuggestSlots searches for free slots of durationMinutes near the desired
// start time, walking the desired day's commitments from an 08:00 cursor,
// then proposing a slot after the last commitment, then the same clock time
// on the next day.
func SuggestSlots(desired time.Time, durationMinutes int, existing []model.Commitment, maxSuggestions int) ([]SlotSuggestion, error) {
	if maxSuggestions <= 0 {
		return nil, ErrInvalidMaxSuggestions
	}

	duration := time.Duration(durationMinutes) * time.Minute
	sameDay := sameDayEvents(desired, existing)

	cursor := time.Date(desired.Year(), desired.Month(), desired.Day(), dayStartHour, 0, 0, 0, desired.Location())

	var suggestions []SlotSuggestion

	// Tier 1: gaps between the 08:00 cursor and each same-day commitment.
	for _, ev := range sameDay {
		if len(suggestions) >= maxSuggestions {
			break
		}
		if ev.StartTime.Sub(cursor) >= duration {
			suggestions = append(suggestions, SlotSuggestion{
				StartTime:  cursor,
				EndTime:    cursor.Add(duration),
				Confidence: ConfidenceSameDayGap,
				Reason:     "Available slot before " + ev.Title,
			})
		}
		// The cursor advances past every commitment whether or not a slot
		// was emitted.
		cursor = ev.EndTime
	}

	// Tier 2: after the last same-day commitment, unless it would run past
	// the evening cutoff.
	if len(suggestions) < maxSuggestions {
		end := cursor.Add(duration)
		if end.Hour() <= dayCutoffHour {
			suggestions = append(suggestions, SlotSuggestion{
				StartTime:  cursor,
				EndTime:    end,
				Confidence: ConfidenceAfterExisting,
				Reason:     "Available slot after existing commitments",
			})
		}
	}

	// Tier 3: same clock time tomorrow. This tier never looks further ahead.
	if len(suggestions) < maxSuggestions {
		nextDay := desired.AddDate(0, 0, 1)
		suggestions = append(suggestions, SlotSuggestion{
			StartTime:  nextDay,
			EndTime:    nextDay.Add(duration),
			Confidence: ConfidenceNextDay,
			Reason:     "Same time tomorrow",
		})
	}

	return suggestions, nil
}

// sameDayEvents returns the commitments on the same calendar day as desired,
// sorted ascending by start time.
func sameDayEvents(desired time.Time, existing []model.Commitment) []model.Commitment {
	y, m, d := desired.Date()
	var out []model.Commitment
	for _, ev := range existing {
		ey, em, ed := ev.StartTime.In(desired.Location()).Date()
		if ey == y && em == m && ed == d {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}
