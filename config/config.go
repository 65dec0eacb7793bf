package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerPort string
	DBPath     string
	SecretKey  string
	LogLevel   string
	AppEnv     string
}

// Load reads a .env file if one exists, then the process environment.
// SECRET_KEY is mandatory; it signs session cookies and anti-forgery tokens.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional, plain env vars work too

	cfg := &Config{
		ServerPort: os.Getenv("PORT"),
		DBPath:     os.Getenv("DB_PATH"),
		SecretKey:  os.Getenv("SECRET_KEY"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		AppEnv:     os.Getenv("APP_ENV"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("environment variable SECRET_KEY must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
