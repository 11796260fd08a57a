package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DefaultDutyRate is the fallback duty rate applied to items whose HS
	// code is missing or unrecognized. A fraction, e.g. 0.15 for 15%.
	DefaultDutyRate decimal.Decimal

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M" for 100
	// requests per minute per client IP.
	RateLimit string

	// FrontendBaseURL is the origin allowed by CORS for the inspector UI.
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_DUTY_RATE", "0.15")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	rateStr := viper.GetString("DEFAULT_DUTY_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		log.Printf("Warning: Invalid value for DEFAULT_DUTY_RATE ('%s'). Defaulting to 0.15.\n", rateStr)
		rate = decimal.RequireFromString("0.15")
	}
	cfg.DefaultDutyRate = rate

	return cfg, nil
}
