package config

import (
	"os"
)

type Config struct {
	Port              string
	GinMode           string
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	SessionSecret     string
	JWKSURI           string
	JWTIssuer         string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8000"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "marina"),
		DBPassword:        getEnv("DB_PASSWORD", "marinapassword"),
		DBName:            getEnv("DB_NAME", "marina"),
		SessionSecret:     getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		JWKSURI:           getEnv("JWKS_URI", "https://www.googleapis.com/oauth2/v3/certs"),
		JWTIssuer:         getEnv("JWT_ISSUER", "https://accounts.google.com"),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", "http://localhost:8000/oauth"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
