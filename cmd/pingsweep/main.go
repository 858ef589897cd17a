package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pingsweep/internal/config"
	"pingsweep/internal/models"
	"pingsweep/internal/ping"
	"pingsweep/internal/report"
	"pingsweep/internal/sweep"
	"pingsweep/internal/targets"
)

func main() {
	// A .env file is optional; missing files are fine.
	godotenv.Load()

	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	addresses, err := targets.Load(cfg.InputPath)
	if err != nil {
		log.Fatalf("Failed to load address list: %v", err)
	}
	if len(addresses) == 0 {
		log.Printf("Warning: address list %s is empty, report will have no rows", cfg.InputPath)
	}

	// Handle shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Starting to ping %d addresses...", len(addresses))
	start := time.Now()

	prober := ping.New(cfg.Timeout, cfg.PacketCount)
	coordinator := sweep.New(prober, cfg.PoolSize)

	results, err := coordinator.Run(ctx, addresses)
	if err != nil {
		log.Fatalf("Sweep aborted: %v", err)
	}

	summary := results.Summary()
	log.Printf("Finished pinging %d addresses in %v", len(addresses), time.Since(start).Round(time.Millisecond))
	log.Printf("Online: %d | Offline: %d | HostNotFound: %d", summary.Online, summary.Offline, summary.HostNotFound)

	var writer models.ReportWriter = report.NewWriter(cfg.OutputDir)

	csvPath, err := writer.WriteCSV(results)
	if err != nil {
		log.Printf("Failed to write report: %v", err)
		// Keep the results visible even when the file cannot be written.
		if encErr := report.Encode(results, os.Stdout); encErr != nil {
			log.Printf("Failed to print report: %v", encErr)
		}
		os.Exit(1)
	}
	log.Printf("Report written to %s", csvPath)

	if cfg.SQLite {
		if dbPath, err := writer.WriteSQLite(results); err != nil {
			log.Printf("Failed to write results database: %v", err)
		} else {
			log.Printf("Results database written to %s", dbPath)
		}
	}

	if cfg.Chart {
		if chartPath, err := writer.WriteChart(results); err != nil {
			log.Printf("Failed to write summary chart: %v", err)
		} else {
			log.Printf("Summary chart written to %s", chartPath)
		}
	}
}
