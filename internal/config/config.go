package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every runtime setting, loaded from the environment once at
// startup and passed by reference to the components that need it.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret       string
	SessionTokenCap int

	EmailAPIKey string
	EmailSender string

	OTPLength int
	OTPExpiry time.Duration

	ResetTimezone string

	RateLimitRPS   int
	RateLimitBurst int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            GetEnvAsString("PORT", "5010"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionTokenCap: GetEnvAsInt("SESSION_TOKEN_CAP", 10),
		EmailAPIKey:     os.Getenv("EMAIL_API_KEY"),
		EmailSender:     GetEnvAsString("EMAIL_SENDER", "demcare12@gmail.com"),
		OTPLength:       GetEnvAsInt("OTP_LENGTH", 4),
		OTPExpiry:       GetEnvAsDuration("OTP_EXPIRY", 100*time.Second),
		ResetTimezone:   GetEnvAsString("RESET_TIMEZONE", "UTC"),
		RateLimitRPS:    GetEnvAsInt("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  GetEnvAsInt("RATE_LIMIT_BURST", 100),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
