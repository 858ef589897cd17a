package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the sweep options that may be set from a YAML file.
type fileConfig struct {
	InputPath   string `yaml:"input_path"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	PacketCount int    `yaml:"packet_count"`
	PoolSize    int    `yaml:"pool_size"`
	OutputDir   string `yaml:"output_dir"`
}

// loadFile applies values from a YAML config file to cfg, skipping any
// option whose flag was set explicitly on the command line.
func loadFile(path string, cfg *Config, flagSet map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file read failed: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file parse failed: %w", err)
	}

	if fc.InputPath != "" && !flagSet["input"] {
		cfg.InputPath = fc.InputPath
	}
	if fc.TimeoutMs > 0 && !flagSet["timeout"] {
		cfg.Timeout = time.Duration(fc.TimeoutMs) * time.Millisecond
	}
	if fc.PacketCount > 0 && !flagSet["count"] {
		cfg.PacketCount = fc.PacketCount
	}
	if fc.PoolSize > 0 && !flagSet["pool"] {
		cfg.PoolSize = fc.PoolSize
	}
	if fc.OutputDir != "" && !flagSet["output"] {
		cfg.OutputDir = fc.OutputDir
	}

	return nil
}
