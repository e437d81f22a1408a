// Package config loads simulator settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Simulator controls the desktop host.
type Simulator struct {
	Title        string  `env:"PDKIT_SIM_TITLE"         envDefault:"Playdate Simulator"`
	Scale        int     `env:"PDKIT_SIM_SCALE"         envDefault:"2"`
	RefreshRate  float32 `env:"PDKIT_SIM_REFRESH_RATE"  envDefault:"30"`
	Lua          bool    `env:"PDKIT_SIM_LUA"`
	ConsoleLines int     `env:"PDKIT_SIM_CONSOLE_LINES" envDefault:"8"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSimulator returns the simulator configuration with defaults applied.
func LoadSimulator() (Simulator, error) {
	var cfg Simulator
	if err := ParseEnv(&cfg); err != nil {
		return Simulator{}, err
	}
	if cfg.Scale < 1 {
		return Simulator{}, fmt.Errorf("PDKIT_SIM_SCALE must be at least 1, got %d", cfg.Scale)
	}
	if cfg.RefreshRate <= 0 {
		return Simulator{}, fmt.Errorf("PDKIT_SIM_REFRESH_RATE must be positive, got %v", cfg.RefreshRate)
	}
	if cfg.ConsoleLines < 0 {
		cfg.ConsoleLines = 0
	}
	return cfg, nil
}
