package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
)

const (
	labelText    = "text"
	labelHeading = "section_header"

	maxHeadingLen   = 60
	maxHeadingWords = 8
)

// PDFEngine is the default Converter, built on the ledongthuc/pdf reader.
// It walks pages in order, classifies lines into labeled text elements,
// detects whitespace-aligned tables, and records image XObjects as picture
// placeholders. Picture bytes are never read here; the image exporter opens
// the PDF separately.
type PDFEngine struct{}

func NewPDFEngine() *PDFEngine {
	return &PDFEngine{}
}

func (e *PDFEngine) Convert(ctx context.Context, pdfPath string) (doc *models.DocumentModel, err error) {
	// The reader panics on some malformed content streams; surface that as a
	// ConversionError like any other engine fault.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &ConversionError{Err: fmt.Errorf("reader panic: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &ConversionError{Err: err}
	}
	defer f.Close()

	doc = &models.DocumentModel{Name: documentName(reader, pdfPath)}

	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, &ConversionError{Err: err}
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest of the document.
			continue
		}

		lines := splitLines(text)
		tables, consumed := detectTables(lines)
		doc.Tables = append(doc.Tables, tables...)

		for j, line := range lines {
			if consumed[j] {
				continue
			}
			doc.Texts = append(doc.Texts, models.TextItem{
				Label: classifyLine(line),
				Text:  line,
			})
		}

		for range pageImages(page) {
			doc.Pictures = append(doc.Pictures, models.PictureRef{Page: i})
		}
	}

	return doc, nil
}

// documentName prefers the Info dictionary title, falling back to the
// filename stem.
func documentName(reader *pdf.Reader, pdfPath string) string {
	if title := reader.Trailer().Key("Info").Key("Title").Text(); strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// pageImages lists the names of image XObjects on a page.
func pageImages(page pdf.Page) []string {
	xobjects := page.Resources().Key("XObject")
	var names []string
	for _, key := range xobjects.Keys() {
		if xobjects.Key(key).Key("Subtype").Name() == "Image" {
			names = append(names, key)
		}
	}
	return names
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// classifyLine assigns an element label to a text line. A line reads as a
// heading when it is short, has no sentence punctuation, and is either all
// caps, numbered like "2.1", or title-cased throughout.
func classifyLine(line string) string {
	if len(line) > maxHeadingLen {
		return labelText
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	if strings.ContainsRune(".,;:!?", last) {
		return labelText
	}

	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxHeadingWords {
		return labelText
	}

	if isNumberedPrefix(words[0]) {
		return labelHeading
	}
	if strings.ToUpper(line) == line && strings.IndexFunc(line, unicode.IsLetter) >= 0 {
		return labelHeading
	}

	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) && !unicode.IsDigit(r[0]) {
			return labelText
		}
	}
	return labelHeading
}

// isNumberedPrefix matches section numbering like "3", "3.", or "3.2.1".
func isNumberedPrefix(word string) bool {
	word = strings.TrimSuffix(word, ".")
	if word == "" {
		return false
	}
	for _, part := range strings.Split(word, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

var columnGap = regexp.MustCompile(`\t|\s{2,}`)

// detectTables finds runs of two or more consecutive lines that split into
// the same number of columns (two or more) on tab or wide-space gaps. The
// first line of a run becomes the header row. The returned mask marks lines
// absorbed into tables so they are not duplicated as text elements.
func detectTables(lines []string) ([]models.TableData, []bool) {
	consumed := make([]bool, len(lines))
	var tables []models.TableData

	i := 0
	for i < len(lines) {
		cells := splitColumns(lines[i])
		if len(cells) < 2 {
			i++
			continue
		}

		end := i + 1
		for end < len(lines) && len(splitColumns(lines[end])) == len(cells) {
			end++
		}
		if end-i < 2 {
			i++
			continue
		}

		table := models.TableData{Columns: cells}
		for j := i + 1; j < end; j++ {
			table.Rows = append(table.Rows, splitColumns(lines[j]))
		}
		for j := i; j < end; j++ {
			consumed[j] = true
		}
		tables = append(tables, table)
		i = end
	}

	return tables, consumed
}

func splitColumns(line string) []string {
	var cells []string
	for _, cell := range columnGap.Split(line, -1) {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			cells = append(cells, trimmed)
		}
	}
	return cells
}
