package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "ai-life-planner/config"
	"ai-life-planner/pkg/gcalendar"
	"ai-life-planner/pkg/groq"
	"ai-life-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure handed to the domains
	cfg        *appConfig.Config
	postgresDB *sql.DB
	calendar   *gcalendar.Client
	llm        groq.IGroq
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *appConfig.Config
	PostgresDB *sql.DB
	Calendar   *gcalendar.Client // optional
	LLM        groq.IGroq        // optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		postgresDB:  cfg.PostgresDB,
		calendar:    cfg.Calendar,
		llm:         cfg.LLM,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
