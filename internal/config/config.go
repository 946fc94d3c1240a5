package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Simplici0/renocalc/internal/derive"
)

const defaultPort = "8080"

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port     string
	Workflow derive.Workflow
	Master   derive.Master
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Missing .env is fine; real deployments inject the environment.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: read .env: %v", err)
	}
	return fromEnv()
}

func fromEnv() Config {
	cfg := Config{
		Port:     os.Getenv("PORT"),
		Workflow: derive.Bathroom,
		Master:   derive.DefaultMaster(),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if raw := os.Getenv("ESTIMATOR_WORKFLOW"); raw != "" {
		w, err := derive.ParseWorkflow(raw)
		if err != nil {
			log.Printf("warning: %v, using %s", err, cfg.Workflow)
		} else {
			cfg.Workflow = w
		}
	}
	if raw := os.Getenv("ESTIMATOR_SCOPE"); raw != "" {
		scope, err := derive.ParseScope(raw)
		if err != nil {
			log.Printf("warning: %v, using %s", err, cfg.Master.Scope)
		} else {
			cfg.Master.Scope = scope
		}
	}
	cfg.Master.RoomSize = envFloat("ESTIMATOR_ROOM_SIZE", cfg.Master.RoomSize)
	cfg.Master.CeilingHeight = envFloat("ESTIMATOR_CEILING_HEIGHT", cfg.Master.CeilingHeight)

	return cfg
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("warning: %s=%q is not a number, using %v", key, raw, fallback)
		return fallback
	}
	return v
}
