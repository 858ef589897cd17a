package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"pingsweep/internal/models"
)

// header is fixed; downstream parsers depend on it staying stable.
var header = []string{"IP", "Status"}

// Writer serializes one sweep's report into timestamped artifacts.
// All artifacts of a run share the same timestamp so they sort and
// group together, and a new run never overwrites a previous one.
type Writer struct {
	outputDir string
	stamp     string
}

// NewWriter creates a Writer for the given output directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
		stamp:     time.Now().Format("2006-01-02_15-04-05"),
	}
}

func (w *Writer) artifactPath(ext string) string {
	return filepath.Join(w.outputDir, fmt.Sprintf("ping-results_%s.%s", w.stamp, ext))
}

// WriteCSV writes the report of record: one row per probed address in
// input order. The file is staged to a temporary path and renamed
// into place, so a failed write leaves nothing behind. Returns the
// final path.
func (w *Writer) WriteCSV(report models.Report) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(w.outputDir, "ping-results_*.csv.tmp")
	if err != nil {
		return "", fmt.Errorf("report create failed: %w", err)
	}

	if err := Encode(report, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("report write failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("report write failed: %w", err)
	}

	final := w.artifactPath("csv")
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("report rename failed: %w", err)
	}

	return final, nil
}

// Encode writes the CSV form of a report. The command uses it as a
// stdout fallback when the report file cannot be created, so results
// are never silently dropped.
func Encode(report models.Report, out io.Writer) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, result := range report {
		if err := cw.Write([]string{result.Address, string(result.Status)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
