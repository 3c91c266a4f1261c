package analyzer

import (
	"strings"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

// IsHeading reports whether a text element's label marks it as a heading.
// The match is deliberately a case-insensitive substring check so that
// variants like "section_header-1" still count.
func IsHeading(label string) bool {
	lower := strings.ToLower(label)
	return strings.Contains(lower, "heading") || strings.Contains(lower, "section_header")
}

// CollectStats derives the summary counters from a converted document.
func CollectStats(doc *models.DocumentModel) models.DocumentStats {
	headings := 0
	for _, t := range doc.Texts {
		if IsHeading(t.Label) {
			headings++
		}
	}

	return models.DocumentStats{
		DocumentName:      doc.Name,
		TotalTextElements: len(doc.Texts),
		TotalHeadings:     headings,
		TotalTables:       len(doc.Tables),
		TotalPictures:     len(doc.Pictures),
	}
}
