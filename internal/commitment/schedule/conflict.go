package schedule

import (
	"fmt"
	"strings"
	"time"

	"ai-life-planner/internal/model"
)

// ConflictResult reports overlaps between a candidate time range and the
// user's existing commitments. Computed per check, never stored.
type ConflictResult struct {
	HasConflict       bool
	ConflictingEvents []model.Commitment
	SuggestionText    string
}

const timeRangeFormat = "Mon Jan 2 15:04"

// DetectConflicts returns every existing commitment whose interval overlaps
// the candidate [start, end) range. Intervals are half-open: touching
// boundaries do not conflict. Conflicting events keep the relative order of
// the input slice.
func DetectConflicts(start, end time.Time, existing []model.Commitment) ConflictResult {
	var conflicts []model.Commitment
	for _, ev := range existing {
		if start.Before(ev.EndTime) && end.After(ev.StartTime) {
			conflicts = append(conflicts, ev)
		}
	}

	if len(conflicts) == 0 {
		return ConflictResult{}
	}

	return ConflictResult{
		HasConflict:       true,
		ConflictingEvents: conflicts,
		SuggestionText:    formatConflicts(conflicts),
	}
}

// formatConflicts renders a human-readable list of the conflicting ranges.
func formatConflicts(conflicts []model.Commitment) string {
	var b strings.Builder
	b.WriteString("Conflicts with: ")
	for i, ev := range conflicts {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s (%s - %s)",
			ev.Title,
			ev.StartTime.Format(timeRangeFormat),
			ev.EndTime.Format("15:04"),
		)
	}
	return b.String()
}
