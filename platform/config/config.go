// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// CommerceConfig provides settings for the commerce back-office gateway.
type CommerceConfig interface {
	GetCommerceShopDomain() string
	GetCommerceAPIVersion() string
	GetCommerceAccessToken() string
}

// MailConfig provides settings for the mail platform adapter.
type MailConfig interface {
	GetEmailEnabled() bool
	GetMailTransport() string
	GetMailTenantID() string
	GetMailClientID() string
	GetMailClientSecret() string
	GetMailSenderAddress() string
	GetMailSenderName() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// NotificationConfig provides settings for the notification module.
type NotificationConfig interface {
	GetStaffRecipients() []string
	GetShopName() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// RedirectConfig provides the fixed destination the form workflows
// send the caller to after completing.
type RedirectConfig interface {
	GetSuccessRedirectURL() string
}

// Mail transport selection values.
const (
	MailTransportGraph = "graph"
	MailTransportSMTP  = "smtp"
)

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	SuccessRedirectURL  string
	CommerceShopDomain  string
	CommerceAPIVersion  string
	CommerceAccessToken string
	EmailEnabled        bool
	MailTransport       string
	MailTenantID        string
	MailClientID        string
	MailClientSecret    string
	MailSenderAddress   string
	MailSenderName      string
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	StaffRecipients     []string
	ShopName            string
	RateLimitPerMinute  int
	RateLimitBurst      int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// CommerceConfig implementation
func (c *Config) GetCommerceShopDomain() string  { return c.CommerceShopDomain }
func (c *Config) GetCommerceAPIVersion() string  { return c.CommerceAPIVersion }
func (c *Config) GetCommerceAccessToken() string { return c.CommerceAccessToken }

// MailConfig implementation
func (c *Config) GetEmailEnabled() bool        { return c.EmailEnabled }
func (c *Config) GetMailTransport() string     { return c.MailTransport }
func (c *Config) GetMailTenantID() string      { return c.MailTenantID }
func (c *Config) GetMailClientID() string      { return c.MailClientID }
func (c *Config) GetMailClientSecret() string  { return c.MailClientSecret }
func (c *Config) GetMailSenderAddress() string { return c.MailSenderAddress }
func (c *Config) GetMailSenderName() string    { return c.MailSenderName }
func (c *Config) GetSMTPHost() string          { return c.SMTPHost }
func (c *Config) GetSMTPPort() int             { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string      { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string      { return c.SMTPPassword }

// NotificationConfig implementation
func (c *Config) GetStaffRecipients() []string { return c.StaffRecipients }
func (c *Config) GetShopName() string          { return c.ShopName }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// RedirectConfig implementation
func (c *Config) GetSuccessRedirectURL() string { return c.SuccessRedirectURL }

// Load reads configuration from the environment (and an optional .env file)
// and validates that every required secret is present. The process must not
// start with an incomplete configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", ""))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		SuccessRedirectURL:  getEnv("SUCCESS_REDIRECT_URL", "/pages/thank-you"),
		CommerceShopDomain:  getEnv("COMMERCE_SHOP_DOMAIN", ""),
		CommerceAPIVersion:  getEnv("COMMERCE_API_VERSION", "2024-07"),
		CommerceAccessToken: getEnv("COMMERCE_ACCESS_TOKEN", ""),
		EmailEnabled:        strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true"),
		MailTransport:       strings.ToLower(getEnv("MAIL_TRANSPORT", MailTransportGraph)),
		MailTenantID:        getEnv("MAIL_TENANT_ID", ""),
		MailClientID:        getEnv("MAIL_CLIENT_ID", ""),
		MailClientSecret:    getEnv("MAIL_CLIENT_SECRET", ""),
		MailSenderAddress:   getEnv("MAIL_SENDER_ADDRESS", ""),
		MailSenderName:      getEnv("MAIL_SENDER_NAME", "Wholesale Portal"),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		StaffRecipients:     splitCSV(getEnv("STAFF_RECIPIENTS", "")),
		ShopName:            getEnv("SHOP_NAME", "Wholesale"),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.CommerceShopDomain == "" {
		return nil, fmt.Errorf("COMMERCE_SHOP_DOMAIN is required")
	}
	if cfg.CommerceAccessToken == "" {
		return nil, fmt.Errorf("COMMERCE_ACCESS_TOKEN is required")
	}
	if cfg.EmailEnabled {
		switch cfg.MailTransport {
		case MailTransportGraph:
			if cfg.MailTenantID == "" || cfg.MailClientID == "" || cfg.MailClientSecret == "" {
				return nil, fmt.Errorf("MAIL_TENANT_ID, MAIL_CLIENT_ID and MAIL_CLIENT_SECRET are required when MAIL_TRANSPORT is graph")
			}
		case MailTransportSMTP:
			if cfg.SMTPHost == "" {
				return nil, fmt.Errorf("SMTP_HOST is required when MAIL_TRANSPORT is smtp")
			}
		default:
			return nil, fmt.Errorf("MAIL_TRANSPORT must be %q or %q, got %q", MailTransportGraph, MailTransportSMTP, cfg.MailTransport)
		}
		if cfg.MailSenderAddress == "" {
			return nil, fmt.Errorf("MAIL_SENDER_ADDRESS is required when email is enabled")
		}
		if len(cfg.StaffRecipients) == 0 {
			return nil, fmt.Errorf("STAFF_RECIPIENTS is required when email is enabled")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
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

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
