package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables take precedence over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_HOURS"); ok {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = v
	}
	if v, ok := os.LookupEnv("BOOKS_API_BASE_URL"); ok {
		config.BooksAPIBaseURL = v
	}
	if v, ok := os.LookupEnv("BOOKS_API_KEY"); ok {
		config.BooksAPIKey = v
	}
}
