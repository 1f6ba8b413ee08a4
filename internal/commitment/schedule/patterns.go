package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"ai-life-planner/internal/model"
)

// Pattern is a detected recurring commitment: the same title landing on the
// same weekday and hour at least twice.
type Pattern struct {
	Title      string
	Type       model.CommitmentType
	Weekday    time.Weekday
	Hour       int
	Count      int
	Confidence float64
	RRule      string // iCalendar RRULE for the detected weekly recurrence
}

// MinPatternConfidence is the surfacing threshold: patterns at or below it
// are suppressed (count/4 must exceed 0.6, i.e. three or more occurrences).
const MinPatternConfidence = 0.6

type patternKey struct {
	title   string
	weekday time.Weekday
	hour    int
}

// DetectPatterns groups commitments by (normalized title, weekday, hour) and
// returns every group with at least two members, ordered by descending
// occurrence count. Confidence = min(count/4, 1.0).
func DetectPatterns(events []model.Commitment) []Pattern {
	groups := make(map[patternKey][]model.Commitment)
	for _, ev := range events {
		key := patternKey{
			title:   normalizeTitle(ev.Title),
			weekday: ev.StartTime.Weekday(),
			hour:    ev.StartTime.Hour(),
		}
		groups[key] = append(groups[key], ev)
	}

	var patterns []Pattern
	for key, members := range groups {
		if len(members) < 2 {
			continue
		}
		confidence := float64(len(members)) / 4.0
		if confidence > 1.0 {
			confidence = 1.0
		}
		patterns = append(patterns, Pattern{
			Title:      members[0].Title,
			Type:       members[0].Type,
			Weekday:    key.weekday,
			Hour:       key.hour,
			Count:      len(members),
			Confidence: confidence,
			RRule:      weeklyRule(key.weekday, key.hour),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].Title < patterns[j].Title
	})
	return patterns
}

// SurfacedPatterns filters DetectPatterns output down to the patterns strong
// enough to suggest to the user.
func SurfacedPatterns(events []model.Commitment) []Pattern {
	all := DetectPatterns(events)
	out := all[:0]
	for _, p := range all {
		if p.Confidence > MinPatternConfidence {
			out = append(out, p)
		}
	}
	return out
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// weeklyRule renders the weekly recurrence as an RRULE string.
func weeklyRule(weekday time.Weekday, hour int) string {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[weekday]},
		Byhour:    []int{hour},
	})
	if err != nil {
		return ""
	}
	return r.String()
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
