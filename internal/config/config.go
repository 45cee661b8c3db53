package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port                string
	LogLevel            string
	JWTSecret           string
	ClientID            string
	ClientSecretHash    string
	HMACSecret          string
	CBRURL              string
	BankMargin          float64
	RateRefreshSchedule string
	DefaultInterestRate float64
	SMTPHost            string
	SMTPPort            string
	SMTPUsername        string
	SMTPPassword        string
	SenderEmail         string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		ClientID:            getEnv("CLIENT_ID", "simulator"),
		ClientSecretHash:    getEnv("CLIENT_SECRET_HASH", ""),
		HMACSecret:          getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		CBRURL:              getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		RateRefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "@daily"),
		SMTPHost:            getEnv("SMTP_HOST", "localhost"),
		SMTPPort:            getEnv("SMTP_PORT", "25"),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		SenderEmail:         getEnv("SENDER_EMAIL", "noreply@localhost"),
	}

	var err error
	if cfg.BankMargin, err = getEnvFloat("BANK_MARGIN", 5.0); err != nil {
		return nil, err
	}
	if cfg.DefaultInterestRate, err = getEnvFloat("DEFAULT_INTEREST_RATE", 0.07); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("CLIENT_ID is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}
	if cfg.DefaultInterestRate < 0 {
		return nil, fmt.Errorf("DEFAULT_INTEREST_RATE must be non-negative, got %v", cfg.DefaultInterestRate)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
