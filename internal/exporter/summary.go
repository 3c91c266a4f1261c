package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

// WriteSummary combines the document statistics with a local timestamp into
// one pretty-printed JSON report.
func WriteSummary(stats models.DocumentStats, path string) error {
	report := models.SummaryReport{
		AnalysisDate:       time.Now().Format("2006-01-02T15:04:05"),
		DocumentStatistics: stats,
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode summary report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}
	return nil
}
