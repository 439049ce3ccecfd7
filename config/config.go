package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Content ContentConfig `json:"content"`
	Notion  NotionConfig  `json:"notion"`
	Cache   CacheConfig   `json:"cache"`
	Auth    AuthConfig    `json:"auth"`
	OAuth   OAuthConfig   `json:"oauth"`
	HTTP    HTTPConfig    `json:"http"`
	Admin   AdminConfig   `json:"admin"`
	Jobs    JobsConfig    `json:"jobs"`
	Logging LoggingConfig `json:"logging"`

	// DatabaseURL selects the postgres-backed user repository when set;
	// the in-memory repository is used otherwise.
	DatabaseURL string `json:"database_url" env:"DATABASE_URL"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type ContentConfig struct {
	// Dir is the directory scanned for front-matter posts.
	Dir string `json:"dir" env:"CONTENT_DIR" default:"content/posts"`
}

type NotionConfig struct {
	Token        string `json:"-" env:"NOTION_TOKEN"`
	DatabaseID   string `json:"database_id" env:"NOTION_DATABASE_ID"`
	ParentPageID string `json:"parent_page_id" env:"NOTION_PARENT_PAGE_ID"`
	Enabled      bool   `json:"enabled" env:"ENABLE_NOTION_CMS" default:"false"`
	// CacheRevalidate is the TTL, in seconds, of the remote client's own
	// published-post cache. Kept separate from the aggregation TTL.
	CacheRevalidate   int           `json:"cache_revalidate" env:"NOTION_CACHE_REVALIDATE" default:"3600"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" env:"NOTION_RATE_LIMIT_INTERVAL" default:"334ms"`
}

type CacheConfig struct {
	BlogTTL time.Duration `json:"blog_ttl" env:"BLOG_CACHE_TTL" default:"60s"`
}

type AuthConfig struct {
	SessionSecret      string        `json:"-" env:"SESSION_SECRET"`
	SessionSecretFile  string        `json:"-" env:"SESSION_SECRET_FILE"`
	SessionTTL         time.Duration `json:"session_ttl" env:"SESSION_TTL" default:"720h"`
	RevalidationSecret string        `json:"-" env:"REVALIDATION_SECRET"`
}

type OAuthConfig struct {
	GoogleClientID     string `json:"google_client_id" env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `json:"-" env:"GOOGLE_CLIENT_SECRET"`
	GitHubClientID     string `json:"github_client_id" env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `json:"-" env:"GITHUB_CLIENT_SECRET"`
}

type HTTPConfig struct {
	ClientTimeout time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
}

type AdminConfig struct {
	Email string `json:"email" env:"ADMIN_EMAIL" default:"admin@example.com"`
}

type JobsConfig struct {
	CacheWarmSchedule string `json:"cache_warm_schedule" env:"CACHE_WARM_SCHEDULE" default:"@every 30m"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load the session secret from a file if configured (Docker Secrets).
	if config.Auth.SessionSecretFile != "" {
		content, err := os.ReadFile(config.Auth.SessionSecretFile)
		if err == nil {
			config.Auth.SessionSecret = strings.TrimSpace(string(content))
		}
		// On read failure the env var value (if any) stays in effect.
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}

// NotionConfigured reports whether the remote integration has the
// credentials it needs. Distinct from Enabled: both must hold for the
// aggregation layer to consult the remote source.
func (c *Config) NotionConfigured() bool {
	return c.Notion.Token != "" && c.Notion.DatabaseID != ""
}
