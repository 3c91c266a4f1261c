package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report_summary.json")
	stats := models.DocumentStats{
		DocumentName:      "report",
		TotalTextElements: 10,
		TotalHeadings:     3,
		TotalTables:       2,
		TotalPictures:     1,
	}

	require.NoError(t, WriteSummary(stats, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))

	docStats, ok := report["Document Statistics"].(map[string]any)
	require.True(t, ok, "missing Document Statistics object")
	assert.Equal(t, "report", docStats["Document Name"])
	assert.Equal(t, float64(10), docStats["Total Text Elements"])
	assert.Equal(t, float64(3), docStats["Total Headings"])
	assert.Equal(t, float64(2), docStats["Total Tables"])
	assert.Equal(t, float64(1), docStats["Total Pictures"])

	date, ok := report["Analysis Date"].(string)
	require.True(t, ok, "missing Analysis Date")
	_, err = time.Parse("2006-01-02T15:04:05", date)
	assert.NoError(t, err)

	// pretty-printed
	assert.Contains(t, string(data), "\n    \"Document Statistics\"")
}
