package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// minSecretLength is the minimum JWT secret length accepted for token signing.
const minSecretLength = 32

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.OMDb.APIKey == "" {
		errs = append(errs, "omdb.api_key: required")
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, "auth.jwt_secret: required")
	} else if len(c.Auth.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Sprintf("auth.jwt_secret: must be at least %d characters", minSecretLength))
	}
	if c.Auth.TokenTTLHours < 0 {
		errs = append(errs, fmt.Sprintf("auth.token_ttl_hours: must be positive, got %d", c.Auth.TokenTTLHours))
	}

	return errs
}
