package models

import "context"

// Prober interface defines probe execution operations
type Prober interface {
	Probe(ctx context.Context, address string) ProbeResult
}

// ReportWriter interface defines report serialization operations
type ReportWriter interface {
	WriteCSV(report Report) (string, error)
	WriteSQLite(report Report) (string, error)
	WriteChart(report Report) (string, error)
}
