package converter

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

// Converter turns a PDF on disk into a structured document model. The
// pipeline treats the implementation as a black box and never retries.
type Converter interface {
	Convert(ctx context.Context, pdfPath string) (*models.DocumentModel, error)
}

// ConversionError wraps any failure of the conversion engine, including
// corrupt or unsupported input.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("document conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
