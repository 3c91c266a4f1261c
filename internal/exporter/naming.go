package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArtifactPaths holds the canonical output locations for one job. All paths
// are derived purely from the output directory and the source filename stem.
type ArtifactPaths struct {
	Markdown  string
	Summary   string
	ImagesDir string
}

func NewArtifactPaths(outputDir, stem string) ArtifactPaths {
	return ArtifactPaths{
		Markdown:  filepath.Join(outputDir, stem+".md"),
		Summary:   filepath.Join(outputDir, stem+"_summary.json"),
		ImagesDir: filepath.Join(outputDir, stem+"_images"),
	}
}

// TablePath returns the CSV path for the n-th table, 1-based.
func TablePath(outputDir, stem string, n int) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_table_%d.csv", stem, n))
}

// Stem returns the filename without directory or extension; it is the
// naming root for every artifact of a job.
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
