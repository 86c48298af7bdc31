// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetDemoUserEmail() string
	GetDemoUserPassword() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RedisConfig provides settings for the Redis session store and task queue.
type RedisConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
}

// SchedulerConfig provides settings for the asynq reminder queue.
type SchedulerConfig interface {
	RedisConfig
	GetReminderQueueName() string
	GetOverdueSweepInterval() time.Duration
}

// SessionConfig provides settings for the session state store.
type SessionConfig interface {
	RedisConfig
	GetSessionTTL() time.Duration
}

// EmailConfig provides settings for enquiry email delivery.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetEnquiryToAddress() string
}

// SearchConfig provides settings for the search and voice scope resolver.
type SearchConfig interface {
	// GetScopeMode is "global" or "component". Global searches every
	// category on every screen; component restricts to the screen's table.
	GetScopeMode() string
}

// ContentConfig provides settings for the marketing content loader.
type ContentConfig interface {
	GetContentBaseURL() string
	GetContentTimeout() time.Duration
}

// AppConfig provides the public application base URL (quote share links, QRs).
type AppConfig interface {
	GetAppBaseURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	JWTAccessSecret  string
	AccessTokenTTL   time.Duration
	DemoUserEmail    string
	DemoUserPassword string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	AppBaseURL       string
	RedisURL         string
	RedisTLSInsecure bool
	ReminderQueue    string
	SweepInterval    time.Duration
	SessionTTL       time.Duration
	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	EnquiryToAddress string
	ScopeMode        string
	ContentBaseURL   string
	ContentTimeout   time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// AuthServiceConfig implementation
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }
func (c *Config) GetDemoUserEmail() string         { return c.DemoUserEmail }
func (c *Config) GetDemoUserPassword() string      { return c.DemoUserPassword }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RedisConfig implementation
func (c *Config) GetRedisURL() string      { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }

// SchedulerConfig implementation
func (c *Config) GetReminderQueueName() string            { return c.ReminderQueue }
func (c *Config) GetOverdueSweepInterval() time.Duration  { return c.SweepInterval }

// SessionConfig implementation
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetEnquiryToAddress() string { return c.EnquiryToAddress }

// SearchConfig implementation
func (c *Config) GetScopeMode() string             { return c.ScopeMode }

// ContentConfig implementation
func (c *Config) GetContentBaseURL() string        { return c.ContentBaseURL }
func (c *Config) GetContentTimeout() time.Duration { return c.ContentTimeout }

// AppConfig implementation
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:   mustDuration(getEnv("JWT_ACCESS_TTL", "12h")),
		DemoUserEmail:    getEnv("DEMO_USER_EMAIL", "owner@texportal.in"),
		DemoUserPassword: getEnv("DEMO_USER_PASSWORD", "textile123"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:5173"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisTLSInsecure: strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		ReminderQueue:    getEnv("REMINDER_QUEUE", "reminders"),
		SweepInterval:    mustDuration(getEnv("OVERDUE_SWEEP_INTERVAL", "6h")),
		SessionTTL:       mustDuration(getEnv("SESSION_TTL", "168h")),
		EmailEnabled:     strings.EqualFold(getEnv("EMAIL_ENABLED", "false"), "true"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "TexPortal"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", ""),
		EnquiryToAddress: getEnv("ENQUIRY_TO_ADDRESS", ""),
		ScopeMode:        getEnv("SEARCH_SCOPE_MODE", "global"),
		ContentBaseURL:   getEnv("CONTENT_BASE_URL", ""),
		ContentTimeout:   mustDuration(getEnv("CONTENT_TIMEOUT", "10s")),
	}

	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.ScopeMode != "global" && cfg.ScopeMode != "component" {
		return nil, fmt.Errorf("SEARCH_SCOPE_MODE must be global or component, got %q", cfg.ScopeMode)
	}
	if cfg.EmailEnabled && (cfg.SMTPHost == "" || cfg.EmailFromAddress == "" || cfg.EnquiryToAddress == "") {
		return nil, fmt.Errorf("SMTP_HOST, EMAIL_FROM_ADDRESS and ENQUIRY_TO_ADDRESS are required when EMAIL_ENABLED is true")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
