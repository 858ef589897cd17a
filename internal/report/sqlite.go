package report

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"pingsweep/internal/models"
)

const sqliteSchema = `
    CREATE TABLE IF NOT EXISTS sweep_results (
        position INTEGER PRIMARY KEY,
        address TEXT NOT NULL,
        status TEXT NOT NULL,
        probed_at DATETIME NOT NULL
    );
`

// WriteSQLite writes the report into a per-run SQLite database next
// to the CSV. Positions preserve input order for consumers that want
// structured queries over the same rows.
func (w *Writer) WriteSQLite(report models.Report) (string, error) {
	path := w.artifactPath("db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fmt.Errorf("results database open failed: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return "", fmt.Errorf("schema creation failed: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("results transaction failed: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO sweep_results (position, address, status, probed_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("results insert failed: %w", err)
	}
	defer stmt.Close()

	for i, result := range report {
		if _, err := stmt.Exec(i, result.Address, string(result.Status), result.ProbedAt); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("results insert failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("results commit failed: %w", err)
	}

	return path, nil
}
