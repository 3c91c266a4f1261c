package models

import (
	"fmt"
	"strings"
)

// DocumentModel is the structured output of the conversion engine. The rest
// of the pipeline consumes it read-only; nothing outside the converter
// package constructs one from raw PDF data.
type DocumentModel struct {
	Name     string
	Texts    []TextItem
	Tables   []TableData
	Pictures []PictureRef
}

// TextItem is one text element with the engine's free-form label. Headings
// carry a label containing "heading" or "section_header".
type TextItem struct {
	Label string
	Text  string
}

// TableData is a table in rows-by-named-columns form.
type TableData struct {
	Columns []string
	Rows    [][]string
}

// PictureRef is a placeholder for an embedded picture. It carries no image
// bytes; image extraction reads the original PDF directly.
type PictureRef struct {
	Page int
}

// ExportMarkdown renders the whole document to Markdown: headings as H2,
// other text as paragraphs, tables as pipe tables in document order.
func (d *DocumentModel) ExportMarkdown() string {
	var b strings.Builder

	for _, t := range d.Texts {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		label := strings.ToLower(t.Label)
		if strings.Contains(label, "heading") || strings.Contains(label, "section_header") {
			b.WriteString("## " + text + "\n\n")
		} else {
			b.WriteString(text + "\n\n")
		}
	}

	for _, table := range d.Tables {
		b.WriteString(table.exportMarkdown())
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (t *TableData) exportMarkdown() string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(t.Columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Columns)) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// String implements fmt.Stringer for log output.
func (d *DocumentModel) String() string {
	return fmt.Sprintf("document %q: %d texts, %d tables, %d pictures",
		d.Name, len(d.Texts), len(d.Tables), len(d.Pictures))
}
