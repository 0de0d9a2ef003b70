package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the application needs. It is built
// once at startup and handed to the components that need it; nothing
// reads the environment after LoadConfig returns.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
	CookieMaxAge  time.Duration
	UploadDir     string
	MaxUploadSize int64
}

// LoadConfig loads configuration from environment variables or uses default values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: os.Getenv("MONGODB_DATABASE"),
		JWTSecret:     os.Getenv("SECRET"),
		TokenTTL:      time.Hour,
		CookieMaxAge:  24 * time.Hour,
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		MaxUploadSize: 5 << 20,
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "medilink"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil || mins <= 0 {
			return nil, errors.New("TOKEN_TTL_MINUTES must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(mins) * time.Minute
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("SECRET is not defined in the environment variables")
	}

	return cfg, nil
}
