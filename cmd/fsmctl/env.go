package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig holds flag defaults taken from the environment, optionally
// seeded from a .env file in the working directory.
type envConfig struct {
	LogLevel  string `env:"FSM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FSM_LOG_FORMAT" envDefault:"text"`
	Strict    bool   `env:"FSM_STRICT" envDefault:"false"`
}

func loadEnv() (envConfig, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
