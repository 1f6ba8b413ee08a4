package schedule_test

import (
	"errors"
	"strings"
	"testing"

	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
)

func TestSuggestSlotsInvalidMax(t *testing.T) {
	_, err := schedule.SuggestSlots(at(14, 0), 30, nil, 0)
	if !errors.Is(err, schedule.ErrInvalidMaxSuggestions) {
		t.Fatalf("err = %v, want ErrInvalidMaxSuggestions", err)
	}
}

func TestSuggestSlotsGapBeforeEvent(t *testing.T) {
	existing := []model.Commitment{
		event("1", "Morning sync", at(9, 0), at(10, 0)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 30, existing, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}

	// First suggestion is the 08:00-08:30 gap before the existing event.
	first := got[0]
	if !first.StartTime.Equal(at(8, 0)) || !first.EndTime.Equal(at(8, 30)) {
		t.Errorf("first slot = [%v, %v), want [08:00, 08:30)", first.StartTime, first.EndTime)
	}
	if !strings.Contains(first.Reason, "Morning sync") {
		t.Errorf("reason %q does not mention the event title", first.Reason)
	}
	if first.Confidence != schedule.ConfidenceSameDayGap {
		t.Errorf("confidence = %v, want %v", first.Confidence, schedule.ConfidenceSameDayGap)
	}
}

func TestSuggestSlotsTierOrder(t *testing.T) {
	existing := []model.Commitment{
		event("1", "Class", at(9, 0), at(10, 0)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 60, existing, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}

	// Same-day gap, then after existing, then next day — descending
	// per-tier confidence.
	wantConfidences := []float64{
		schedule.ConfidenceSameDayGap,
		schedule.ConfidenceAfterExisting,
		schedule.ConfidenceNextDay,
	}
	for i, want := range wantConfidences {
		if got[i].Confidence != want {
			t.Errorf("suggestion %d confidence = %v, want %v", i, got[i].Confidence, want)
		}
	}

	// After-existing tier starts at the last commitment's end.
	if !got[1].StartTime.Equal(at(10, 0)) {
		t.Errorf("after-existing slot starts %v, want 10:00", got[1].StartTime)
	}

	// Next-day tier keeps the desired clock time.
	if got[2].StartTime.Hour() != 14 || got[2].StartTime.Day() != 11 {
		t.Errorf("next-day slot = %v, want 14:00 on the next day", got[2].StartTime)
	}
	if got[2].Reason != "Same time tomorrow" {
		t.Errorf("next-day reason = %q", got[2].Reason)
	}
}

func TestSuggestSlotsCursorAdvancesPastTightGaps(t *testing.T) {
	// 08:00-08:20 gap is too small for 30 minutes; cursor still advances to
	// the event's end before checking the next gap.
	existing := []model.Commitment{
		event("1", "Early", at(8, 20), at(9, 0)),
		event("2", "Later", at(11, 0), at(12, 0)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 30, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if !got[0].StartTime.Equal(at(9, 0)) {
		t.Errorf("slot starts %v, want 09:00 (after the early event)", got[0].StartTime)
	}
	if !strings.Contains(got[0].Reason, "Later") {
		t.Errorf("reason %q should mention the following event", got[0].Reason)
	}
}

func TestSuggestSlotsEveningCutoff(t *testing.T) {
	// Last commitment ends 22:00; a 90-minute slot after it would end 23:30,
	// past the cutoff, so the after-existing tier is skipped and only the
	// next-day suggestion remains.
	existing := []model.Commitment{
		event("1", "Late event", at(8, 0), at(22, 0)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 90, existing, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1 (next day only): %+v", len(got), got)
	}
	if got[0].Confidence != schedule.ConfidenceNextDay {
		t.Errorf("confidence = %v, want next-day tier", got[0].Confidence)
	}
}

func TestSuggestSlotsEmptyDay(t *testing.T) {
	got, err := schedule.SuggestSlots(at(14, 0), 30, nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	// No same-day commitments: after-existing proposes 08:00, then next day.
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if !got[0].StartTime.Equal(at(8, 0)) {
		t.Errorf("first slot starts %v, want 08:00", got[0].StartTime)
	}
	if got[0].Confidence != schedule.ConfidenceAfterExisting {
		t.Errorf("confidence = %v, want after-existing tier", got[0].Confidence)
	}
}

func TestSuggestSlotsRespectsMax(t *testing.T) {
	existing := []model.Commitment{
		event("1", "A", at(9, 0), at(9, 30)),
		event("2", "B", at(10, 0), at(10, 30)),
		event("3", "C", at(11, 0), at(11, 30)),
		event("4", "D", at(12, 0), at(12, 30)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 20, existing, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want max 2", len(got))
	}
	for _, s := range got {
		if s.Confidence != schedule.ConfidenceSameDayGap {
			t.Errorf("confidence = %v, want same-day tier", s.Confidence)
		}
	}
}

func TestSuggestSlotsOutOfOrderInput(t *testing.T) {
	// Same-day commitments are sorted by start time before walking.
	existing := []model.Commitment{
		event("2", "Second", at(11, 0), at(12, 0)),
		event("1", "First", at(9, 0), at(10, 0)),
	}

	got, err := schedule.SuggestSlots(at(14, 0), 30, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !strings.Contains(got[0].Reason, "First") {
		t.Fatalf("first suggestion should precede the earliest event, got %+v", got)
	}
}
