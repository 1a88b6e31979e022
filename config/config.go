package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-intelligence/internal/urgency"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig

	// Engine
	Engine     EngineConfig
	Urgency    urgency.Coefficients
	Recurrence RecurrenceConfig

	// Optional calendar export for generated instances
	GoogleCalendar GoogleCalendarConfig
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

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

type DatabaseConfig struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
}

type EngineConfig struct {
	Timezone string
}

type RecurrenceConfig struct {
	DefaultCount int
	MaxCount     int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	EventDuration   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
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
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	// Storage
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.SQLitePath = viper.GetString("database.sqlite_path")
	cfg.Database.PostgresDSN = viper.GetString("database.postgres_dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.PostgresDSN = dsn
	}

	// Engine
	cfg.Engine.Timezone = viper.GetString("engine.timezone")
	cfg.Urgency = loadUrgency()
	cfg.Recurrence.DefaultCount = viper.GetInt("recurrence.default_count")
	cfg.Recurrence.MaxCount = viper.GetInt("recurrence.max_count")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = viper.GetDuration("google_calendar.event_duration")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.Database.PostgresDSN == "" {
			return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q (want sqlite or postgres)", cfg.Database.Driver)
	}

	if cfg.Recurrence.DefaultCount <= 0 {
		return fmt.Errorf("recurrence.default_count must be positive")
	}
	if cfg.Recurrence.MaxCount < cfg.Recurrence.DefaultCount {
		return fmt.Errorf("recurrence.max_count must be >= recurrence.default_count")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be positive when rate limiting is enabled")
	}
	return nil
}

func loadUrgency() urgency.Coefficients {
	return urgency.Coefficients{
		PriorityHigh:    viper.GetFloat64("urgency.priority_high"),
		PriorityMedium:  viper.GetFloat64("urgency.priority_medium"),
		PriorityLow:     viper.GetFloat64("urgency.priority_low"),
		DueOverdue:      viper.GetFloat64("urgency.due_overdue"),
		DueWithinDay:    viper.GetFloat64("urgency.due_within_day"),
		DueWithin3Days:  viper.GetFloat64("urgency.due_within_3_days"),
		DueWithinWeek:   viper.GetFloat64("urgency.due_within_week"),
		DueWithin2Weeks: viper.GetFloat64("urgency.due_within_2_weeks"),
		DueWithinMonth:  viper.GetFloat64("urgency.due_within_month"),
		DueLater:        viper.GetFloat64("urgency.due_later"),
		NextTag:         viper.GetFloat64("urgency.next_tag"),
		Active:          viper.GetFloat64("urgency.active"),
		Scheduled:       viper.GetFloat64("urgency.scheduled"),
		Blocking:        viper.GetFloat64("urgency.blocking"),
		Blocked:         viper.GetFloat64("urgency.blocked"),
		AgePerDay:       viper.GetFloat64("urgency.age_per_day"),
		AgeMax:          viper.GetFloat64("urgency.age_max"),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 120)

	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.sqlite_path", "data/tasks.db")

	viper.SetDefault("engine.timezone", "UTC")
	viper.SetDefault("recurrence.default_count", 4)
	viper.SetDefault("recurrence.max_count", 100)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration", "1h")

	c := urgency.DefaultCoefficients()
	viper.SetDefault("urgency.priority_high", c.PriorityHigh)
	viper.SetDefault("urgency.priority_medium", c.PriorityMedium)
	viper.SetDefault("urgency.priority_low", c.PriorityLow)
	viper.SetDefault("urgency.due_overdue", c.DueOverdue)
	viper.SetDefault("urgency.due_within_day", c.DueWithinDay)
	viper.SetDefault("urgency.due_within_3_days", c.DueWithin3Days)
	viper.SetDefault("urgency.due_within_week", c.DueWithinWeek)
	viper.SetDefault("urgency.due_within_2_weeks", c.DueWithin2Weeks)
	viper.SetDefault("urgency.due_within_month", c.DueWithinMonth)
	viper.SetDefault("urgency.due_later", c.DueLater)
	viper.SetDefault("urgency.next_tag", c.NextTag)
	viper.SetDefault("urgency.active", c.Active)
	viper.SetDefault("urgency.scheduled", c.Scheduled)
	viper.SetDefault("urgency.blocking", c.Blocking)
	viper.SetDefault("urgency.blocked", c.Blocked)
	viper.SetDefault("urgency.age_per_day", c.AgePerDay)
	viper.SetDefault("urgency.age_max", c.AgeMax)
}
