package main

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is read from the environment (and a .env file, if present).
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	AdminUsername    string        `env:"ADMIN_USERNAME"`
	AdminPassword    string        `env:"ADMIN_PASSWORD"`
	ResumePath       string        `env:"RESUME_PATH" envDefault:"files/Amaro_da_Luz_Resume.pdf"`
	ImagesDir        string        `env:"IMAGES_DIR" envDefault:"images"`
	TrackVisitors    bool          `env:"TRACK_VISITORS" envDefault:"true"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyAdminDefaults()
	return cfg, nil
}

// applyAdminDefaults fills development credentials when none are set.
func (c *Config) applyAdminDefaults() {
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
}
