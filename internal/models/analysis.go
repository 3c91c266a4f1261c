package models

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// AnalysisResult is the terminal record of one analysis job. Pipeline failures
// after the upload has been accepted are reported here via Status and Error,
// not as a transport-level error.
type AnalysisResult struct {
	JobID                 string        `json:"job_id"`
	Status                string        `json:"status"`
	ProcessingTimeSeconds float64       `json:"processing_time_seconds"`
	Results               *JobArtifacts `json:"results,omitempty"`
	Error                 string        `json:"error,omitempty"`
}

// JobArtifacts lists every path written for a completed job.
type JobArtifacts struct {
	JobID        string   `json:"job_id"`
	MarkdownPath string   `json:"markdown_path"`
	SummaryPath  string   `json:"summary_path"`
	Tables       []string `json:"tables"`
	ImagesDir    string   `json:"images_dir"`
}

// DocumentStats are the aggregates reported in the summary JSON. The key
// names are part of the on-disk contract.
type DocumentStats struct {
	DocumentName      string `json:"Document Name"`
	TotalTextElements int    `json:"Total Text Elements"`
	TotalHeadings     int    `json:"Total Headings"`
	TotalTables       int    `json:"Total Tables"`
	TotalPictures     int    `json:"Total Pictures"`
}

// SummaryReport is the body of {stem}_summary.json.
type SummaryReport struct {
	AnalysisDate       string        `json:"Analysis Date"`
	DocumentStatistics DocumentStats `json:"Document Statistics"`
}
