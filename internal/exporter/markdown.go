package exporter

import (
	"fmt"
	"os"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

// ExportMarkdown serializes the full document to one UTF-8 Markdown file,
// overwriting any existing file at path.
func ExportMarkdown(doc *models.DocumentModel, path string) error {
	if err := os.WriteFile(path, []byte(doc.ExportMarkdown()), 0644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}
	return nil
}
