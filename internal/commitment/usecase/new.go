package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-life-planner/internal/commitment/parser"
	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/model"
	"ai-life-planner/pkg/datemath"
	"ai-life-planner/pkg/gcalendar"
	pkgLog "ai-life-planner/pkg/log"
)

// CalendarClient abstracts the Google Calendar mirror for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config holds the product policy constants of the commitment domain.
type Config struct {
	// PreviewThreshold: show the parse preview only above this confidence.
	PreviewThreshold float64
	// LowConfidenceThreshold: flag results below this for user confirmation.
	LowConfidenceThreshold float64
	Timezone               string
	CalendarID             string
}

const (
	eventCacheSize = 1024
	eventCacheTTL  = 30 * time.Second
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *parser.Parser
	dates    *datemath.Parser
	calendar CalendarClient // nil when the mirror is not configured
	cfg      Config

	// Per-user upcoming-commitment cache so repeated conflict/slot checks
	// while the user types do not hammer the store.
	events *expirable.LRU[string, []model.Commitment]
}

// New creates a new commitment UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	p *parser.Parser,
	dates *datemath.Parser,
	calendar CalendarClient,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   p,
		dates:    dates,
		calendar: calendar,
		cfg:      cfg,
		events:   expirable.NewLRU[string, []model.Commitment](eventCacheSize, nil, eventCacheTTL),
	}
}
