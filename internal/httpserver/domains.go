package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "ai-life-planner/internal/agent/delivery/http"
	agentUC "ai-life-planner/internal/agent/usecase"
	"ai-life-planner/internal/commitment"
	commitmentHTTP "ai-life-planner/internal/commitment/delivery/http"
	"ai-life-planner/internal/commitment/parser"
	commitmentRepo "ai-life-planner/internal/commitment/repository/postgre"
	commitmentUsecase "ai-life-planner/internal/commitment/usecase"
	"ai-life-planner/internal/middleware"
	"ai-life-planner/pkg/datemath"
)

// setupCommitmentDomain initializes the commitment domain and registers its
// routes. The use case is returned so dependent domains can reuse it.
func (srv *HTTPServer) setupCommitmentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (commitment.UseCase, error) {
	dates, err := datemath.NewParser(srv.cfg.Scheduler.Timezone)
	if err != nil {
		return nil, err
	}

	// 1. Repository
	repo := commitmentRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	var calendar commitmentUsecase.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	uc := commitmentUsecase.New(srv.l, repo, parser.New(dates), dates, calendar, commitmentUsecase.Config{
		PreviewThreshold:       srv.cfg.Scheduler.PreviewThreshold,
		LowConfidenceThreshold: srv.cfg.Scheduler.LowConfidenceThreshold,
		Timezone:               srv.cfg.Scheduler.Timezone,
		CalendarID:             srv.cfg.GoogleCalendar.CalendarID,
	})

	// 3. HTTP Handler
	h := commitmentHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/commitments
	commitmentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Commitment domain registered")
	return uc, nil
}

// setupAgentDomain initializes the conversational agent on top of the
// commitment domain.
func (srv *HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, commitments commitment.UseCase) error {
	dates, err := datemath.NewParser(srv.cfg.Scheduler.Timezone)
	if err != nil {
		return err
	}

	uc := agentUC.New(srv.l, srv.llm, commitments, dates)
	h := agentHTTP.New(srv.l, uc)
	agentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Agent domain registered")
	return nil
}
