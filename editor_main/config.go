// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gubacajifad-ctrl/terraforge/editor/cloud"
)

// Config holds all editor service settings.
type Config struct {
	Listen   string        `yaml:"listen"`
	MaxConns int           `yaml:"max_conns"`
	Terrain  TerrainConfig `yaml:"terrain"`
	Cloud    cloud.Config  `yaml:"cloud"`
	Logging  LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the field shape.
type TerrainConfig struct {
	Resolution int     `yaml:"resolution"`
	WorldSize  float32 `yaml:"world_size"`
	Seed       int64   `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Listen:   ":8192",
		MaxConns: 256,
		Terrain: TerrainConfig{
			Resolution: 256,
			WorldSize:  256,
			Seed:       56,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration with priority: defaults < file < flags.
func LoadConfig() (*Config, error) {
	cfg := Default()

	var (
		configPath string
		listen     string
		resolution int
		seed       int64
	)
	flag.StringVar(&configPath, "config", "", "path to YAML config file")
	flag.StringVar(&listen, "listen", "", "listen address (overrides config)")
	flag.IntVar(&resolution, "resolution", 0, "field resolution (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "noise permutation seed (overrides config)")
	flag.Parse()

	if configPath == "" {
		if _, err := os.Stat("./config.yaml"); err == nil {
			configPath = "./config.yaml"
		}
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// CLI flags have the highest priority
	if listen != "" {
		cfg.Listen = listen
	}
	if resolution != 0 {
		cfg.Terrain.Resolution = resolution
	}
	if seed != 0 {
		cfg.Terrain.Seed = seed
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
