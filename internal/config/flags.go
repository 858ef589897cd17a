package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ParseFlags parses command-line flags and returns a Config.
// Precedence: explicit flag > config file > environment > default.
func ParseFlags() (Config, error) {
	var (
		input    = flag.String("input", envString("PINGSWEEP_INPUT", ""), "Path to newline-delimited address list")
		timeout  = flag.Duration("timeout", envDuration("PINGSWEEP_TIMEOUT", 1*time.Second), "Per-probe timeout")
		count    = flag.Int("count", envInt("PINGSWEEP_COUNT", 1), "Packets per probe")
		pool     = flag.Int("pool", envInt("PINGSWEEP_POOL", 0), fmt.Sprintf("Concurrent probes (0 = one per address, capped at %d)", DefaultPoolCap))
		output   = flag.String("output", envString("PINGSWEEP_OUTPUT", "."), "Report output directory")
		filePath = flag.String("config", "", "Optional YAML config file")
		sqlite   = flag.Bool("sqlite", false, "Also write results to a per-run SQLite file")
		chart    = flag.Bool("chart", false, "Also write a status summary chart")
		logFile  = flag.String("logfile", "", "Append the run log to this file")
	)
	flag.Parse()

	cfg := Config{
		InputPath:   *input,
		Timeout:     *timeout,
		PacketCount: *count,
		PoolSize:    *pool,
		OutputDir:   *output,
		SQLite:      *sqlite,
		Chart:       *chart,
		LogFile:     *logFile,
	}

	if *filePath != "" {
		// Flags set on the command line win over file values.
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if err := loadFile(*filePath, &cfg, set); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
