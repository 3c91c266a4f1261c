package exporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

// ExportTables writes one CSV per table in document order, numbered from 1.
// A document without tables produces no files and an empty path list.
func ExportTables(doc *models.DocumentModel, outputDir, stem string) ([]string, error) {
	paths := make([]string, 0, len(doc.Tables))

	for i, table := range doc.Tables {
		path := TablePath(outputDir, stem, i+1)
		if err := writeCSV(path, table); err != nil {
			return nil, fmt.Errorf("failed to export table %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeCSV(path string, table models.TableData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		f.Close()
		return err
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
