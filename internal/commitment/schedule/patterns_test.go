package schedule_test

import (
	"strings"
	"testing"
	"time"

	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
)

// weeklyAt builds n occurrences of a commitment on consecutive weeks.
func weeklyAt(title string, typ model.CommitmentType, first time.Time, n int) []model.Commitment {
	var out []model.Commitment
	for i := 0; i < n; i++ {
		start := first.AddDate(0, 0, 7*i)
		out = append(out, model.Commitment{
			ID:        title + string(rune('0'+i)),
			Title:     title,
			Type:      typ,
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
	}
	return out
}

func TestDetectPatterns(t *testing.T) {
	// Monday 18:00 gym, four weeks running.
	monday := time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC)
	events := weeklyAt("Gym", model.TypeGym, monday, 4)

	// One-off event never forms a pattern.
	oneOff := time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)
	events = append(events, model.Commitment{
		ID: "x", Title: "Dentist", StartTime: oneOff, EndTime: oneOff.Add(time.Hour),
	})

	got := schedule.DetectPatterns(events)
	if len(got) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(got), got)
	}

	p := got[0]
	if p.Weekday != time.Monday || p.Hour != 18 || p.Count != 4 {
		t.Errorf("pattern = %+v, want Monday 18h count 4", p)
	}
	if p.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (min(4/4, 1))", p.Confidence)
	}
	if !strings.Contains(p.RRule, "FREQ=WEEKLY") || !strings.Contains(p.RRule, "BYDAY=MO") {
		t.Errorf("rrule = %q, want weekly on Monday", p.RRule)
	}
}

func TestDetectPatternsNormalizesTitle(t *testing.T) {
	monday := time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC)
	events := weeklyAt("Gym", model.TypeGym, monday, 1)
	events = append(events, weeklyAt("  gym ", model.TypeGym, monday.AddDate(0, 0, 7), 1)...)

	got := schedule.DetectPatterns(events)
	if len(got) != 1 || got[0].Count != 2 {
		t.Fatalf("case/space variants should group together, got %+v", got)
	}
}

func TestSurfacedPatternsThreshold(t *testing.T) {
	monday := time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)

	// Two occurrences: confidence 0.5, below the surfacing threshold.
	events := weeklyAt("Gym", model.TypeGym, monday, 2)
	// Three occurrences: confidence 0.75, surfaced.
	events = append(events, weeklyAt("Calculus", model.TypeClass, tuesday, 3)...)

	got := schedule.SurfacedPatterns(events)
	if len(got) != 1 {
		t.Fatalf("got %d surfaced patterns, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Calculus" {
		t.Errorf("surfaced = %q, want the three-occurrence pattern", got[0].Title)
	}
}

func TestClassifyPriority(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		typ   model.CommitmentType
		until time.Duration
		want  model.Priority
	}{
		{"anything within 2h is urgent", model.TypeSocial, time.Hour, model.PriorityUrgent},
		{"gym within 2h is urgent", model.TypeGym, 30 * time.Minute, model.PriorityUrgent},
		{"exam in 20h is urgent", model.TypeExam, 20 * time.Hour, model.PriorityUrgent},
		{"exam in 30h is high", model.TypeExam, 30 * time.Hour, model.PriorityHigh},
		{"class in 12h is urgent", model.TypeClass, 12 * time.Hour, model.PriorityUrgent},
		{"class in 3 days is high", model.TypeClass, 72 * time.Hour, model.PriorityHigh},
		{"social in 5h is high", model.TypeSocial, 5 * time.Hour, model.PriorityHigh},
		{"hackathon in 2 days is medium", model.TypeHackathon, 48 * time.Hour, model.PriorityMedium},
		{"gym in 4h is medium", model.TypeGym, 4 * time.Hour, model.PriorityMedium},
		{"gym next week is low", model.TypeGym, 7 * 24 * time.Hour, model.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.ClassifyPriority(tt.typ, now.Add(tt.until), now)
			if got != tt.want {
				t.Errorf("ClassifyPriority(%s, +%v) = %s, want %s", tt.typ, tt.until, got, tt.want)
			}
		})
	}
}

func TestEstimateTravelMinutes(t *testing.T) {
	tests := []struct {
		location string
		want     int
	}{
		{"Zoom call", 0},
		{"online session", 0},
		{"home office", 0},
		{"campus center", 10},
		{"central library", 10},
		{"campus gym", 10}, // campus outranks gym in table order
		{"gold's gym downtown", 15},
		{"luigi's restaurant", 20},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := schedule.EstimateTravelMinutes(tt.location); got != tt.want {
				t.Errorf("EstimateTravelMinutes(%q) = %d, want %d", tt.location, got, tt.want)
			}
		})
	}
}
