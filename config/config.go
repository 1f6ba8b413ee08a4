package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Life planner specifics
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	Groq           GroqConfig
	Reminder       ReminderConfig

	// API access
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the connection string for database/sql with the pgx driver.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// SchedulerConfig holds the commitment parsing and scheduling policy.
type SchedulerConfig struct {
	Timezone string
	// PreviewThreshold: show the parse preview only above this confidence.
	PreviewThreshold float64
	// LowConfidenceThreshold: flag results below this for user confirmation.
	LowConfidenceThreshold float64
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// GroqConfig holds credentials for the Groq OpenAI-compatible API used by
// the conversational agent.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout string
}

type ReminderConfig struct {
	Enabled bool
	// Spec is a cron expression; default scans every minute.
	Spec string
	// LeadMinutes is the default reminder lead time when a commitment has none.
	LeadMinutes int
}

type AuthConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Scheduler policy
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.PreviewThreshold = viper.GetFloat64("scheduler.preview_threshold")
	cfg.Scheduler.LowConfidenceThreshold = viper.GetFloat64("scheduler.low_confidence_threshold")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Groq
	cfg.Groq.APIKey = expandEnvVar(viper.GetString("groq.api_key"))
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.Timeout = viper.GetString("groq.timeout")
	if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}

	// Reminder scanner
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Spec = viper.GetString("reminder.spec")
	cfg.Reminder.LeadMinutes = viper.GetInt("reminder.lead_minutes")

	// API access
	cfg.Auth.APIKey = expandEnvVar(viper.GetString("auth.api_key"))
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "planner")
	viper.SetDefault("postgres.database", "planner")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("scheduler.timezone", "Asia/Kolkata")
	viper.SetDefault("scheduler.preview_threshold", 0.5)
	viper.SetDefault("scheduler.low_confidence_threshold", 0.7)

	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.model", "llama-3.1-8b-instant")
	viper.SetDefault("groq.timeout", "30s")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.spec", "* * * * *")
	viper.SetDefault("reminder.lead_minutes", 30)

	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}

	return value
}
