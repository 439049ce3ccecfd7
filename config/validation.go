package config

import (
	"fmt"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateNotionConfig(&config.Notion); err != nil {
		return fmt.Errorf("notion config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateNotionConfig(config *NotionConfig) error {
	if config.CacheRevalidate < 0 {
		return fmt.Errorf("cache revalidate must not be negative, got %d", config.CacheRevalidate)
	}

	if config.RateLimitInterval <= 0 {
		return fmt.Errorf("rate limit interval must be positive, got %v", config.RateLimitInterval)
	}

	// Enabled without credentials is allowed: the integration simply
	// reports itself unconfigured and read paths degrade to local-only.
	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.BlogTTL <= 0 {
		return fmt.Errorf("blog cache TTL must be positive, got %v", config.BlogTTL)
	}

	return nil
}

func validateAuthConfig(config *AuthConfig) error {
	if config.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %v", config.SessionTTL)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch config.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}
