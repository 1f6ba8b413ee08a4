package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"ai-life-planner/config"
	_ "ai-life-planner/docs" // Swagger docs
	commitmentRepo "ai-life-planner/internal/commitment/repository/postgre"
	"ai-life-planner/internal/httpserver"
	"ai-life-planner/internal/reminder"
	"ai-life-planner/pkg/gcalendar"
	"ai-life-planner/pkg/groq"
	"ai-life-planner/pkg/log"
)

// @title       AI Life Planner API
// @description Natural-language commitment scheduling with conflict detection, slot suggestions and a conversational agent.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Life Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Scheduler.Timezone)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error(ctx, "Failed to ping database: ", err)
		return
	}
	cancel()
	logger.Info(ctx, "Postgres connected")

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Groq LLM client (optional, agent falls back to heuristics)
	var llm groq.IGroq
	if cfg.Groq.APIKey != "" {
		timeout, tErr := time.ParseDuration(cfg.Groq.Timeout)
		if tErr != nil {
			timeout = 30 * time.Second
		}
		client, gErr := groq.New(groq.Config{
			APIKey:  cfg.Groq.APIKey,
			Model:   cfg.Groq.Model,
			BaseURL: cfg.Groq.BaseURL,
			Timeout: timeout,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Groq not available (optional): %v", gErr)
		} else {
			llm = client
			logger.Infof(ctx, "Groq initialized with model %s", cfg.Groq.Model)
		}
	} else {
		logger.Warn(ctx, "GROQ_API_KEY missing, agent runs on local heuristics only")
	}

	// 6. Reminder scanner
	if cfg.Reminder.Enabled {
		repo := commitmentRepo.New(db, logger)
		scanner := reminder.New(logger, repo, reminder.LogNotifier{L: logger}, reminder.Config{
			Spec:        cfg.Reminder.Spec,
			LeadMinutes: cfg.Reminder.LeadMinutes,
		})
		if err := scanner.Start(); err != nil {
			logger.Error(ctx, "Failed to start reminder scanner: ", err)
			return
		}
		defer scanner.Stop()
		logger.Infof(ctx, "Reminder scanner running (%s)", cfg.Reminder.Spec)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PostgresDB:  db,
		Calendar:    calendarClient,
		LLM:         llm,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
