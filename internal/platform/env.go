package platform

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the environment configuration of the memmark tools.
type EnvConfig struct {
	WorldDir string `env:"MEMMARK_WORLD"`
	Player   string `env:"MEMMARK_PLAYER"`
	Catalog  string `env:"MEMMARK_CATALOG"`
	Debug    bool   `env:"MEMMARK_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses EnvConfig from the environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
