package report

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pingsweep/internal/models"
)

func sampleReport() models.Report {
	now := time.Now()
	return models.Report{
		{Address: "10.0.0.1", Status: models.StatusOnline, ProbedAt: now},
		{Address: "10.0.0.2", Status: models.StatusOffline, ProbedAt: now},
		{Address: "missing.example.test", Status: models.StatusHostNotFound, ProbedAt: now},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := NewWriter(dir).WriteCSV(report)
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "ping-results_") || !strings.HasSuffix(base, ".csv") {
		t.Errorf("WriteCSV() filename = %q, want ping-results_<timestamp>.csv", base)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse report: %v", err)
	}

	if len(rows) != len(report)+1 {
		t.Fatalf("report has %d rows, want %d", len(rows), len(report)+1)
	}
	if rows[0][0] != "IP" || rows[0][1] != "Status" {
		t.Errorf("header = %v, want [IP Status]", rows[0])
	}
	for i, result := range report {
		row := rows[i+1]
		if row[0] != result.Address {
			t.Errorf("row %d address = %q, want %q", i, row[0], result.Address)
		}
		if row[1] != string(result.Status) {
			t.Errorf("row %d status = %q, want %q", i, row[1], result.Status)
		}
	}
}

func TestWriteCSVEmptyReport(t *testing.T) {
	dir := t.TempDir()

	path, err := NewWriter(dir).WriteCSV(models.Report{})
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if strings.TrimSpace(string(data)) != "IP,Status" {
		t.Errorf("empty report content = %q, want header only", string(data))
	}
}

func TestWriteCSVCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")

	if _, err := NewWriter(dir).WriteCSV(sampleReport()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
}

func TestWriteCSVUnwritableDirLeavesNothingBehind(t *testing.T) {
	// A regular file where the output directory should be makes both
	// MkdirAll and CreateTemp fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "outdir")
	if err := os.WriteFile(blocker, []byte("in the way"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	if _, err := NewWriter(blocker).WriteCSV(sampleReport()); err == nil {
		t.Fatal("WriteCSV() into a non-directory should return an error")
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("failed to list directory: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "outdir" {
			t.Errorf("unexpected leftover file %q after failed write", entry.Name())
		}
	}
}

func TestWriteSQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := NewWriter(dir).WriteSQLite(report)
	if err != nil {
		t.Fatalf("WriteSQLite() error = %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open results database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT address, status FROM sweep_results ORDER BY position")
	if err != nil {
		t.Fatalf("failed to query results: %v", err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var address, status string
		if err := rows.Scan(&address, &status); err != nil {
			t.Fatalf("failed to scan row: %v", err)
		}
		if i >= len(report) {
			t.Fatalf("more rows than results")
		}
		if address != report[i].Address || status != string(report[i].Status) {
			t.Errorf("row %d = (%q, %q), want (%q, %q)", i, address, status, report[i].Address, report[i].Status)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("row iteration failed: %v", err)
	}
	if i != len(report) {
		t.Errorf("results database has %d rows, want %d", i, len(report))
	}
}

func TestWriteChart(t *testing.T) {
	dir := t.TempDir()

	path, err := NewWriter(dir).WriteChart(sampleReport())
	if err != nil {
		t.Fatalf("WriteChart() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("chart path = %q, want a .png artifact", path)
	}
}

func TestWriteChartEmptyReport(t *testing.T) {
	if _, err := NewWriter(t.TempDir()).WriteChart(models.Report{}); err == nil {
		t.Error("WriteChart() with no results should return an error")
	}
}

func TestArtifactsShareTimestamp(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	csvPath, err := writer.WriteCSV(sampleReport())
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	dbPath, err := writer.WriteSQLite(sampleReport())
	if err != nil {
		t.Fatalf("WriteSQLite() error = %v", err)
	}

	trim := func(p string) string {
		return strings.TrimSuffix(strings.TrimSuffix(filepath.Base(p), ".csv"), ".db")
	}
	if trim(csvPath) != trim(dbPath) {
		t.Errorf("artifact stems differ: %q vs %q", csvPath, dbPath)
	}
}
