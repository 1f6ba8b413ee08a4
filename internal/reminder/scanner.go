package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/commitment/schedule"
	"ai-life-planner/internal/model"
	pkgLog "ai-life-planner/pkg/log"
)

// Reminder is one due notification for an upcoming commitment.
type Reminder struct {
	Commitment model.Commitment
	Priority   model.Priority
	DueAt      time.Time
}

// Notifier receives due reminders. Delivery transports live behind this
// interface; the default implementation only logs.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// LogNotifier logs due reminders.
type LogNotifier struct {
	L pkgLog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, r Reminder) error {
	n.L.Infof(ctx, "reminder due: %q starts at %s priority=%s",
		r.Commitment.Title, r.Commitment.StartTime.Format(time.RFC3339), r.Priority)
	return nil
}

// Config holds scanner settings.
type Config struct {
	// Spec is the cron expression driving scans.
	Spec string
	// LeadMinutes is the reminder lead time for commitments without one.
	LeadMinutes int
}

// Scanner periodically scans upcoming commitments and fires reminders when
// their lead time is reached. Each commitment fires at most once per start
// time.
type Scanner struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier Notifier
	cfg      Config
	cron     *cron.Cron

	mu    sync.Mutex
	fired map[string]time.Time // commitment ID -> start time already notified
}

// New creates a reminder Scanner. Start must be called to begin scanning.
func New(l pkgLog.Logger, repo repository.Repository, notifier Notifier, cfg Config) *Scanner {
	if cfg.Spec == "" {
		cfg.Spec = "* * * * *"
	}
	if cfg.LeadMinutes <= 0 {
		cfg.LeadMinutes = 30
	}
	return &Scanner{
		l:        l,
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		cron:     cron.New(),
		fired:    make(map[string]time.Time),
	}
}

// Start schedules the scan job and starts the cron runner.
func (s *Scanner) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Spec, func() {
		if err := s.Scan(context.Background(), time.Now()); err != nil {
			s.l.Errorf(context.Background(), "reminder scan: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron runner and waits for a running scan to finish.
func (s *Scanner) Stop() {
	<-s.cron.Stop().Done()
}

// Scan fires reminders for commitments whose lead time has been reached at
// now. Exported so a scan can be driven directly in tests.
func (s *Scanner) Scan(ctx context.Context, now time.Time) error {
	maxLead := time.Duration(s.cfg.LeadMinutes) * time.Minute
	if maxLead < 24*time.Hour {
		maxLead = 24 * time.Hour
	}

	commitments, _, err := s.repo.ListCommitments(ctx, repository.ListCommitmentsOptions{
		From: now,
		To:   now.Add(maxLead),
	})
	if err != nil {
		return err
	}

	for _, c := range commitments {
		lead := time.Duration(c.ReminderMinutes) * time.Minute
		if c.ReminderMinutes <= 0 {
			lead = time.Duration(s.cfg.LeadMinutes) * time.Minute
		}

		dueAt := c.StartTime.Add(-lead)
		if now.Before(dueAt) || !now.Before(c.StartTime) {
			continue
		}
		if s.alreadyFired(c) {
			continue
		}

		r := Reminder{
			Commitment: c,
			Priority:   schedule.ClassifyPriority(c.Type, c.StartTime, now),
			DueAt:      dueAt,
		}
		if err := s.notifier.Notify(ctx, r); err != nil {
			s.l.Errorf(ctx, "reminder notify %s: %v", c.ID, err)
			continue
		}
		s.markFired(c)
	}

	return nil
}

func (s *Scanner) alreadyFired(c model.Commitment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.fired[c.ID]
	return ok && start.Equal(c.StartTime)
}

func (s *Scanner) markFired(c model.Commitment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fired[c.ID] = c.StartTime
}
