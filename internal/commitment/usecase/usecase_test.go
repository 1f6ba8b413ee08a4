package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/commitment/parser"
	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/commitment/usecase"
	"ai-life-planner/internal/model"
	"ai-life-planner/pkg/datemath"
	"ai-life-planner/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	commitments []model.Commitment
	listCalls   int
	listErr     error
	createErr   error
	created     []repository.CreateCommitmentOptions
	updated     []repository.UpdateCommitmentOptions
	deleted     []string
}

func (m *mockRepo) CreateCommitment(ctx context.Context, opt repository.CreateCommitmentOptions) (model.Commitment, error) {
	if m.createErr != nil {
		return model.Commitment{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.Commitment{
		ID:              opt.ID,
		UserID:          opt.UserID,
		Title:           opt.Title,
		Type:            opt.Type,
		StartTime:       opt.StartTime,
		EndTime:         opt.EndTime,
		Location:        opt.Location,
		ReminderMinutes: opt.ReminderMinutes,
		GCalEventID:     opt.GCalEventID,
	}, nil
}

func (m *mockRepo) GetOneCommitment(ctx context.Context, opt repository.GetOneCommitmentOptions) (model.Commitment, error) {
	for _, c := range m.commitments {
		if c.ID == opt.ID && (opt.UserID == "" || c.UserID == opt.UserID) {
			return c, nil
		}
	}
	return model.Commitment{}, nil
}

func (m *mockRepo) ListCommitments(ctx context.Context, opt repository.ListCommitmentsOptions) ([]model.Commitment, int, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.commitments, len(m.commitments), nil
}

func (m *mockRepo) UpdateCommitment(ctx context.Context, opt repository.UpdateCommitmentOptions) (model.Commitment, error) {
	m.updated = append(m.updated, opt)
	return model.Commitment{
		ID:        opt.ID,
		UserID:    opt.UserID,
		Title:     opt.Title,
		Type:      opt.Type,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		Location:  opt.Location,
	}, nil
}

func (m *mockRepo) DeleteCommitment(ctx context.Context, userID, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	events   []gcalendar.Event
	err      error
	listErr  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Event{ID: "gcal-1", Summary: req.Summary}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func newTestUseCase(t *testing.T, repo *mockRepo, cal usecase.CalendarClient) commitment.UseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return usecase.New(&mockLogger{}, repo, parser.New(dates), dates, cal, usecase.Config{
		PreviewThreshold:       0.5,
		LowConfidenceThreshold: 0.7,
		Timezone:               "UTC",
	})
}

func dayAt(hour, min int) time.Time {
	base := time.Now().UTC().Add(48 * time.Hour)
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, time.UTC)
}

func stored(id, title string, start, end time.Time) model.Commitment {
	return model.Commitment{
		ID:        id,
		UserID:    "user-1",
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}
}

func TestParse(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

	out, err := uc.Parse(context.Background(), commitment.ParseInput{
		UserID:  "user-1",
		RawText: "meeting at 3pm",
		Now:     &now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Parsed.Title != "meeting" {
		t.Errorf("title = %q, want %q", out.Parsed.Title, "meeting")
	}
	if !out.ShowPreview {
		t.Error("expected preview for confidence 0.70")
	}
	if out.LowConfidence {
		t.Error("confidence 0.70 should not be flagged low")
	}
}

func TestParseEmptyText(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	_, err := uc.Parse(context.Background(), commitment.ParseInput{UserID: "user-1", RawText: "   "})
	if !errors.Is(err, commitment.ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload", err)
	}
}

func TestCheckConflicts(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "team sync", dayAt(10, 30), dayAt(11, 30)),
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.CheckConflicts(context.Background(), commitment.CheckConflictsInput{
		UserID:    "user-1",
		StartTime: dayAt(10, 0),
		EndTime:   dayAt(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.HasConflict {
		t.Fatal("expected a conflict")
	}
	if len(out.Alternatives) == 0 {
		t.Error("expected alternative slots alongside the conflict")
	}
}

func TestCheckConflictsInvalidRange(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	_, err := uc.CheckConflicts(context.Background(), commitment.CheckConflictsInput{
		UserID:    "user-1",
		StartTime: dayAt(11, 0),
		EndTime:   dayAt(10, 0),
	})
	if !errors.Is(err, commitment.ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
}

func TestCheckConflictsIncludesCalendarEvents(t *testing.T) {
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "ext-1", Summary: "dentist", StartTime: dayAt(10, 30), EndTime: dayAt(11, 30)},
	}}
	uc := newTestUseCase(t, &mockRepo{}, cal)

	out, err := uc.CheckConflicts(context.Background(), commitment.CheckConflictsInput{
		UserID:    "user-1",
		StartTime: dayAt(10, 0),
		EndTime:   dayAt(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.HasConflict {
		t.Fatal("expected a conflict from the external calendar event")
	}
	if out.Result.ConflictingEvents[0].Title != "dentist" {
		t.Errorf("conflicting title = %q, want %q", out.Result.ConflictingEvents[0].Title, "dentist")
	}
}

func TestCheckConflictsSkipsMirroredCalendarEvents(t *testing.T) {
	mirrored := stored("c1", "team sync", dayAt(14, 0), dayAt(15, 0))
	mirrored.GCalEventID = "gcal-9"
	repo := &mockRepo{commitments: []model.Commitment{mirrored}}
	// Stale mirror copy overlapping the candidate; the stored times win.
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "gcal-9", Summary: "team sync", StartTime: dayAt(10, 0), EndTime: dayAt(11, 0)},
	}}
	uc := newTestUseCase(t, repo, cal)

	out, err := uc.CheckConflicts(context.Background(), commitment.CheckConflictsInput{
		UserID:    "user-1",
		StartTime: dayAt(10, 0),
		EndTime:   dayAt(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.HasConflict {
		t.Fatal("mirrored calendar event must not conflict on its own")
	}
}

func TestCheckConflictsCalendarLookupFailureIsNonFatal(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "team sync", dayAt(10, 30), dayAt(11, 30)),
	}}
	cal := &mockCalendar{listErr: errors.New("api down")}
	uc := newTestUseCase(t, repo, cal)

	out, err := uc.CheckConflicts(context.Background(), commitment.CheckConflictsInput{
		UserID:    "user-1",
		StartTime: dayAt(10, 0),
		EndTime:   dayAt(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.HasConflict {
		t.Fatal("stored conflict must survive a calendar lookup failure")
	}
}

func TestSuggestSlots(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "lecture", dayAt(9, 0), dayAt(10, 0)),
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.SuggestSlots(context.Background(), commitment.SuggestSlotsInput{
		UserID:          "user-1",
		StartTime:       dayAt(9, 30),
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	if out.Suggestions[0].Confidence != schedule.ConfidenceSameDayGap {
		t.Errorf("first suggestion confidence = %v, want %v", out.Suggestions[0].Confidence, schedule.ConfidenceSameDayGap)
	}
}

func TestSuggestSlotsInvalidDuration(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	_, err := uc.SuggestSlots(context.Background(), commitment.SuggestSlotsInput{
		UserID:    "user-1",
		StartTime: dayAt(9, 0),
	})
	if !errors.Is(err, commitment.ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload", err)
	}
}

func TestCreateBlockedByConflict(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "team sync", dayAt(10, 0), dayAt(11, 0)),
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Create(context.Background(), commitment.CreateInput{
		UserID:    "user-1",
		Title:     "gym session",
		Type:      model.TypeGym,
		StartTime: dayAt(10, 30),
		EndTime:   dayAt(11, 30),
	})
	if !errors.Is(err, commitment.ErrConflictDetected) {
		t.Fatalf("err = %v, want ErrConflictDetected", err)
	}
	if out.Conflicts == nil || !out.Conflicts.Result.HasConflict {
		t.Fatal("expected conflict details on blocked create")
	}
	if len(repo.created) != 0 {
		t.Error("blocked create must not insert")
	}
}

func TestCreateBlockedByCalendarEvent(t *testing.T) {
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "ext-1", Summary: "dentist", StartTime: dayAt(10, 0), EndTime: dayAt(11, 0)},
	}}
	repo := &mockRepo{}
	uc := newTestUseCase(t, repo, cal)

	_, err := uc.Create(context.Background(), commitment.CreateInput{
		UserID:    "user-1",
		Title:     "gym session",
		Type:      model.TypeGym,
		StartTime: dayAt(10, 30),
		EndTime:   dayAt(11, 30),
	})
	if !errors.Is(err, commitment.ErrConflictDetected) {
		t.Fatalf("err = %v, want ErrConflictDetected", err)
	}
	if len(repo.created) != 0 {
		t.Error("blocked create must not insert")
	}
}

func TestCreateForceBypassesConflicts(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "team sync", dayAt(10, 0), dayAt(11, 0)),
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, repo, cal)

	out, err := uc.Create(context.Background(), commitment.CreateInput{
		UserID:    "user-1",
		Title:     "gym session",
		Type:      model.TypeGym,
		StartTime: dayAt(10, 30),
		EndTime:   dayAt(11, 30),
		Location:  "campus gym",
		Force:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Commitment.ID == "" {
		t.Error("expected a generated ID")
	}
	if out.Commitment.GCalEventID != "gcal-1" {
		t.Errorf("gcal event id = %q, want %q", out.Commitment.GCalEventID, "gcal-1")
	}
	if len(cal.requests) != 1 {
		t.Fatalf("calendar calls = %d, want 1", len(cal.requests))
	}
	if cal.requests[0].Location != "campus gym" {
		t.Errorf("calendar location = %q", cal.requests[0].Location)
	}
}

func TestCreateCalendarFailureIsNonFatal(t *testing.T) {
	repo := &mockRepo{}
	cal := &mockCalendar{err: errors.New("api down")}
	uc := newTestUseCase(t, repo, cal)

	out, err := uc.Create(context.Background(), commitment.CreateInput{
		UserID:    "user-1",
		Title:     "study block",
		StartTime: dayAt(14, 0),
		EndTime:   dayAt(15, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Commitment.GCalEventID != "" {
		t.Errorf("gcal event id = %q, want empty on mirror failure", out.Commitment.GCalEventID)
	}
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input commitment.CreateInput
		want  error
	}{
		{
			name:  "empty title",
			input: commitment.CreateInput{UserID: "user-1", Title: " ", StartTime: dayAt(9, 0), EndTime: dayAt(10, 0)},
			want:  commitment.ErrInvalidPayload,
		},
		{
			name:  "unknown type",
			input: commitment.CreateInput{UserID: "user-1", Title: "x", Type: "party", StartTime: dayAt(9, 0), EndTime: dayAt(10, 0)},
			want:  commitment.ErrInvalidPayload,
		},
		{
			name:  "start after end",
			input: commitment.CreateInput{UserID: "user-1", Title: "x", StartTime: dayAt(10, 0), EndTime: dayAt(9, 0)},
			want:  commitment.ErrInvalidTimeRange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateInvalidatesEventCache(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	if _, err := uc.Patterns(ctx, "user-1"); err != nil {
		t.Fatalf("Patterns: %v", err)
	}
	if _, err := uc.Patterns(ctx, "user-1"); err != nil {
		t.Fatalf("Patterns: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1 (second read served from cache)", repo.listCalls)
	}

	if _, err := uc.Create(ctx, commitment.CreateInput{
		UserID:    "user-1",
		Title:     "study block",
		StartTime: dayAt(14, 0),
		EndTime:   dayAt(15, 0),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.Patterns(ctx, "user-1"); err != nil {
		t.Fatalf("Patterns: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("listCalls = %d, want 2 (cache dropped after create)", repo.listCalls)
	}
}

func TestDetail(t *testing.T) {
	start := dayAt(18, 0)
	repo := &mockRepo{commitments: []model.Commitment{
		{
			ID:        "c1",
			UserID:    "user-1",
			Title:     "workout",
			Type:      model.TypeGym,
			StartTime: start,
			EndTime:   dayAt(19, 0),
			Location:  "city gym",
		},
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Detail(context.Background(), "user-1", "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TravelMinutes != 15 {
		t.Errorf("travel minutes = %d, want 15 for a gym location", out.TravelMinutes)
	}
	if out.Priority == "" {
		t.Error("expected a priority classification")
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	_, err := uc.Detail(context.Background(), "user-1", "missing")
	if !errors.Is(err, commitment.ErrCommitmentNotFound) {
		t.Fatalf("err = %v, want ErrCommitmentNotFound", err)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		{
			ID:        "c1",
			UserID:    "user-1",
			Title:     "workout",
			Type:      model.TypeGym,
			StartTime: dayAt(18, 0),
			EndTime:   dayAt(19, 0),
			Location:  "campus gym",
		},
	}}
	uc := newTestUseCase(t, repo, nil)

	newStart := dayAt(19, 0)
	out, err := uc.Update(context.Background(), commitment.UpdateInput{
		ID:        "c1",
		UserID:    "user-1",
		Title:     "evening workout",
		StartTime: &newStart,
		EndTime:   timePtr(dayAt(20, 0)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Commitment.Title != "evening workout" {
		t.Errorf("title = %q", out.Commitment.Title)
	}
	if out.Commitment.Location != "campus gym" {
		t.Errorf("location = %q, want untouched field preserved", out.Commitment.Location)
	}
	if !out.Commitment.StartTime.Equal(newStart) {
		t.Errorf("start = %v, want %v", out.Commitment.StartTime, newStart)
	}
}

func TestUpdateInvalidRange(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "workout", dayAt(18, 0), dayAt(19, 0)),
	}}
	uc := newTestUseCase(t, repo, nil)

	_, err := uc.Update(context.Background(), commitment.UpdateInput{
		ID:        "c1",
		UserID:    "user-1",
		StartTime: timePtr(dayAt(20, 0)),
	})
	if !errors.Is(err, commitment.ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		stored("c1", "workout", dayAt(18, 0), dayAt(19, 0)),
	}}
	uc := newTestUseCase(t, repo, nil)

	if err := uc.Delete(context.Background(), "user-1", "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "c1" {
		t.Errorf("deleted = %v", repo.deleted)
	}

	err := uc.Delete(context.Background(), "user-1", "missing")
	if !errors.Is(err, commitment.ErrCommitmentNotFound) {
		t.Fatalf("err = %v, want ErrCommitmentNotFound", err)
	}
}

func TestExportICS(t *testing.T) {
	repo := &mockRepo{commitments: []model.Commitment{
		{
			ID:        "c1",
			UserID:    "user-1",
			Title:     "physics exam",
			Type:      model.TypeExam,
			StartTime: dayAt(9, 0),
			EndTime:   dayAt(11, 0),
			Location:  "hall B",
		},
	}}
	uc := newTestUseCase(t, repo, nil)

	data, err := uc.ExportICS(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	feed := string(data)
	for _, want := range []string{"BEGIN:VCALENDAR", "SUMMARY:physics exam", "LOCATION:hall B", "END:VCALENDAR"} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
