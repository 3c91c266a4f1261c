package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/BerylCAtieno/document-analyzer-api/internal/utils"
)

// ImageExtractor pulls embedded raster images out of the original PDF. It
// bypasses the conversion engine entirely; the engine's picture placeholders
// do not reliably carry image bytes.
type ImageExtractor interface {
	Extract(pdfPath, imagesDir string) (int, error)
}

// PDFImageExtractor reads page image objects through pdfcpu and writes the
// raw bytes untouched, one file per image. Pages whose images cannot be
// decoded are logged and skipped; filesystem failures abort the export.
type PDFImageExtractor struct {
	logger *utils.Logger
}

func NewPDFImageExtractor(logger *utils.Logger) *PDFImageExtractor {
	return &PDFImageExtractor{logger: logger}
}

func (e *PDFImageExtractor) Extract(pdfPath, imagesDir string) (written int, err error) {
	// pdfcpu's repair path panics on some malformed files; contain that here
	// so a bad input fails the job instead of unwinding the request.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("image extraction fault: %v", r)
		}
	}()

	// The directory exists even when the document has no images.
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create images directory: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF for image extraction: %w", err)
	}
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		images, err := pdfcpu.ExtractPageImages(pdfCtx, pageNr, false)
		if err != nil {
			e.logger.Warn("Skipping images on unreadable page", "page", pageNr, "error", err)
			continue
		}

		// Map iteration order is random; sort by object number for a stable
		// index within the page.
		objNrs := make([]int, 0, len(images))
		for objNr := range images {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for i, objNr := range objNrs {
			img := images[objNr]
			name := fmt.Sprintf("page%d_img%d.%s", pageNr, i+1, img.FileType)
			if err := writeImage(filepath.Join(imagesDir, name), img); err != nil {
				return written, fmt.Errorf("failed to write image %s: %w", name, err)
			}
			written++
		}
	}

	return written, nil
}

func writeImage(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
