package http

import (
	"ai-life-planner/internal/commitment"
	"ai-life-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc commitment.UseCase
}

// New creates a new HTTP handler for the commitment domain.
func New(l log.Logger, uc commitment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
