package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/document-analyzer-api/internal/utils"
)

func TestPDFImageExtractor_MalformedPDFReturnsError(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "broken.pdf")

	// Header only: no xref table, an unterminated string literal, truncated
	// mid-object. Must come back as an error, never as a panic.
	malformed := []byte("%PDF-1.7\n1 0 obj\n<< /Title (unterminated\nendobj\n")
	require.NoError(t, os.WriteFile(pdfPath, malformed, 0644))

	e := NewPDFImageExtractor(utils.NewLogger("error"))

	var count int
	var err error
	require.NotPanics(t, func() {
		count, err = e.Extract(pdfPath, filepath.Join(dir, "images"))
	})
	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestPDFImageExtractor_CreatesImagesDirBeforeReading(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "missing.pdf")
	imagesDir := filepath.Join(dir, "missing_images")

	e := NewPDFImageExtractor(utils.NewLogger("error"))
	_, err := e.Extract(pdfPath, imagesDir)

	assert.Error(t, err, "nonexistent input must fail")
	assert.DirExists(t, imagesDir, "the images directory is created regardless")
}
