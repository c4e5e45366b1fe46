package config

import (
	"os"
	"time"
)

// Server captures process-level configuration for the directory service.
type Server struct {
	Addr           string
	Environment    string
	DatabaseURL    string
	JWTSigningKey  string
	RequestTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("DEMONYM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("DEMONYM_ENV")
	if env == "" {
		env = "development"
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("DEMONYM_REQUEST_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	jwtSigningKey := os.Getenv("DEMONYM_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:           addr,
		Environment:    env,
		DatabaseURL:    os.Getenv("DEMONYM_DATABASE_URL"),
		JWTSigningKey:  jwtSigningKey,
		RequestTimeout: timeout,
	}
}
