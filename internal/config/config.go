package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uasplan/uplan-backend-go/internal/volume"
)

// Config is the application configuration.
type Config struct {
	Port      string
	Generator volume.Config
}

// Load builds the configuration from the environment. PORT sets the listen
// address; GENERATOR_CONFIG names an optional YAML file overriding the
// default generation parameters. A broken override file is logged and
// skipped so the service still comes up on defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	gen := volume.DefaultConfig()
	if path := os.Getenv("GENERATOR_CONFIG"); path != "" {
		loaded, err := LoadGeneratorFile(path)
		if err != nil {
			log.Printf("ignoring generator config %s: %v", path, err)
		} else {
			gen = loaded
		}
	}

	return &Config{
		Port:      port,
		Generator: gen,
	}
}

// LoadGeneratorFile reads generation parameters from a YAML file. Fields not
// present keep their defaults; the merged result must validate.
func LoadGeneratorFile(path string) (volume.Config, error) {
	cfg := volume.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read generator config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse generator config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
