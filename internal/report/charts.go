package report

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"pingsweep/internal/models"
)

// WriteChart renders a bar chart of the sweep's status totals.
func (w *Writer) WriteChart(report models.Report) (string, error) {
	if len(report) == 0 {
		return "", fmt.Errorf("no results to chart")
	}

	summary := report.Summary()

	graph := chart.BarChart{
		Title: "Sweep Results",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    600,
		Height:   400,
		BarWidth: 80,
		YAxis: chart.YAxis{
			// Anchor the range so single-status sweeps still render.
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(summary.Total()),
			},
		},
		Bars: []chart.Value{
			{Label: string(models.StatusOnline), Value: float64(summary.Online)},
			{Label: string(models.StatusOffline), Value: float64(summary.Offline)},
			{Label: string(models.StatusHostNotFound), Value: float64(summary.HostNotFound)},
		},
	}

	path := w.artifactPath("png")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("chart create failed: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("chart render failed: %w", err)
	}

	return path, nil
}
