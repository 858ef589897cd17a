package config

import (
	"fmt"
	"time"
)

// DefaultPoolCap bounds concurrent probes when no pool size is configured.
const DefaultPoolCap = 128

// Config holds all configuration for a reachability sweep
type Config struct {
	InputPath   string
	Timeout     time.Duration
	PacketCount int
	PoolSize    int
	OutputDir   string
	SQLite      bool
	Chart       bool
	LogFile     string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must be specified")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.PacketCount <= 0 {
		return fmt.Errorf("packet count must be positive")
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("pool size cannot be negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return nil
}
