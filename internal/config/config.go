package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	IdentityURL       string `mapstructure:"IDENTITY_URL"`
	ScoringURL        string `mapstructure:"AICVD_URL"`
	ScoringOAuthToken string `mapstructure:"AICVD_OAUTH_TOKEN"`
	CRMURL            string `mapstructure:"CRM_URL"`
	CRMAPIKey         string `mapstructure:"CRM_API_KEY"`

	ReportSigningSecret string `mapstructure:"REPORT_SIGNING_SECRET"`
	ReportBaseURL       string `mapstructure:"REPORT_BASE_URL"`
	CouponCode          string `mapstructure:"COUPON_CODE"`

	RecordCollection   string `mapstructure:"RECORD_COLLECTION"`
	CRMAuditCollection string `mapstructure:"CRM_AUDIT_COLLECTION"`

	// Pipeline behavior toggles. Earlier deployments of the bridge ran
	// without hashid authentication and with the extended medical-protocol
	// summary; both remain selectable per environment.
	RequireAuth      bool `mapstructure:"REQUIRE_AUTH"`
	ExtendedProtocol bool `mapstructure:"EXTENDED_PROTOCOL"`

	UpstreamTimeoutSeconds int `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RECORD_COLLECTION", "aicvd")
	v.SetDefault("CRM_AUDIT_COLLECTION", "crm_responses")
	v.SetDefault("REQUIRE_AUTH", true)
	v.SetDefault("EXTENDED_PROTOCOL", false)
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("IDENTITY_URL")
	v.BindEnv("AICVD_URL")
	v.BindEnv("AICVD_OAUTH_TOKEN")
	v.BindEnv("CRM_URL")
	v.BindEnv("CRM_API_KEY")
	v.BindEnv("REPORT_SIGNING_SECRET")
	v.BindEnv("REPORT_BASE_URL")
	v.BindEnv("COUPON_CODE")
	v.BindEnv("RECORD_COLLECTION")
	v.BindEnv("CRM_AUDIT_COLLECTION")
	v.BindEnv("REQUIRE_AUTH")
	v.BindEnv("EXTENDED_PROTOCOL")
	v.BindEnv("UPSTREAM_TIMEOUT_SECONDS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The scoring
// service endpoint, its pre-shared token, and the report signing secret
// are always required; the identity endpoint is required only when hashid
// authentication is enabled. CRM settings may be omitted, in which case
// downstream forwarding is disabled.
func (c *Config) Validate() error {
	if c.ScoringURL == "" {
		return fmt.Errorf("AICVD_URL is required")
	}
	if c.ScoringOAuthToken == "" {
		return fmt.Errorf("AICVD_OAUTH_TOKEN is required")
	}
	if c.ReportSigningSecret == "" {
		return fmt.Errorf("REPORT_SIGNING_SECRET is required")
	}
	if c.RequireAuth && c.IdentityURL == "" {
		return fmt.Errorf("IDENTITY_URL is required when REQUIRE_AUTH is true")
	}
	if c.CRMURL != "" && c.CRMAPIKey == "" {
		return fmt.Errorf("CRM_API_KEY is required when CRM_URL is set")
	}
	return nil
}

// ForwardingEnabled reports whether a CRM endpoint is configured.
func (c *Config) ForwardingEnabled() bool {
	return c.CRMURL != ""
}
