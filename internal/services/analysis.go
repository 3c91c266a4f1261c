package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/BerylCAtieno/document-analyzer-api/internal/analyzer"
	"github.com/BerylCAtieno/document-analyzer-api/internal/config"
	"github.com/BerylCAtieno/document-analyzer-api/internal/converter"
	"github.com/BerylCAtieno/document-analyzer-api/internal/exporter"
	"github.com/BerylCAtieno/document-analyzer-api/internal/models"
	"github.com/BerylCAtieno/document-analyzer-api/internal/storage"
	"github.com/BerylCAtieno/document-analyzer-api/internal/utils"
)

type AnalysisService interface {
	// Analyze runs the full pipeline for one upload. Validation and size
	// failures return an error; failures after the file has been accepted
	// are reported in-band via the result's Status and Error fields.
	Analyze(ctx context.Context, file io.Reader, filename string) (*models.AnalysisResult, error)
	Ready(ctx context.Context) error
}

type analysisService struct {
	store     storage.Storage
	converter converter.Converter
	images    exporter.ImageExtractor
	cfg       *config.Config
	logger    *utils.Logger
}

func NewService(cfg *config.Config, logger *utils.Logger) (AnalysisService, error) {
	store, err := storage.NewLocalStorage(cfg.TempDir, cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &analysisService{
		store:     store,
		converter: converter.NewPDFEngine(),
		images:    exporter.NewPDFImageExtractor(logger),
		cfg:       cfg,
		logger:    logger,
	}, nil
}

func (s *analysisService) Analyze(ctx context.Context, file io.Reader, filename string) (*models.AnalysisResult, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, utils.NewBadRequestError("Only PDF files are supported")
	}

	jobID := utils.GenerateID()
	logger := s.logger.WithJob(jobID)
	start := time.Now()
	logger.Info("Starting analysis", "filename", filename)

	tempPath, size, err := s.store.SaveTemp(jobID, filename, file, s.cfg.MaxFileSizeBytes())
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return nil, utils.NewPayloadTooLargeError(
				fmt.Sprintf("File size exceeds %dMB limit", s.cfg.MaxFileSizeMB))
		}
		// Any other save failure happens after the job exists; report it as
		// the job's terminal failed state, not a transport error. SaveTemp
		// has already discarded its partial file.
		logger.Error("Failed to save upload", "error", err)
		return &models.AnalysisResult{
			JobID:                 jobID,
			Status:                models.StatusFailed,
			ProcessingTimeSeconds: roundSeconds(time.Since(start)),
			Error:                 err.Error(),
		}, nil
	}
	logger.Info("File saved to temp", "path", tempPath, "bytes", size)

	// The temp file is removed on every exit path; a failed delete is
	// logged but never changes the job's reported status.
	defer func() {
		if err := s.store.RemoveTemp(tempPath); err != nil {
			logger.Warn("Failed to clean up temp file", "path", tempPath, "error", err)
		}
	}()

	artifacts, err := s.runPipeline(ctx, logger, jobID, tempPath, filename)
	elapsed := roundSeconds(time.Since(start))

	if err != nil {
		logger.Error("Analysis failed", "error", err)
		return &models.AnalysisResult{
			JobID:                 jobID,
			Status:                models.StatusFailed,
			ProcessingTimeSeconds: elapsed,
			Error:                 err.Error(),
		}, nil
	}

	logger.Info("Analysis completed",
		"elapsed_seconds", elapsed,
		"tables", len(artifacts.Tables))

	return &models.AnalysisResult{
		JobID:                 jobID,
		Status:                models.StatusCompleted,
		ProcessingTimeSeconds: elapsed,
		Results:               artifacts,
	}, nil
}

// runPipeline drives conversion and every exporter strictly in sequence
// within the job's own output directory.
func (s *analysisService) runPipeline(ctx context.Context, logger *utils.Logger, jobID, tempPath, filename string) (*models.JobArtifacts, error) {
	outputDir, err := s.store.CreateJobDir(jobID)
	if err != nil {
		return nil, err
	}

	doc, err := s.converter.Convert(ctx, tempPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Conversion finished", "document", doc)

	stem := exporter.Stem(filename)
	paths := exporter.NewArtifactPaths(outputDir, stem)
	stats := analyzer.CollectStats(doc)

	tables, err := exporter.ExportTables(doc, outputDir, stem)
	if err != nil {
		return nil, err
	}

	if err := exporter.ExportMarkdown(doc, paths.Markdown); err != nil {
		return nil, err
	}

	imageCount, err := s.images.Extract(tempPath, paths.ImagesDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Images extracted", "count", imageCount)

	if err := exporter.WriteSummary(stats, paths.Summary); err != nil {
		return nil, err
	}

	return &models.JobArtifacts{
		JobID:        jobID,
		MarkdownPath: paths.Markdown,
		SummaryPath:  paths.Summary,
		Tables:       tables,
		ImagesDir:    paths.ImagesDir,
	}, nil
}

func (s *analysisService) Ready(ctx context.Context) error {
	if s.converter == nil {
		return fmt.Errorf("conversion engine not initialized")
	}
	if err := s.store.Ready(); err != nil {
		return err
	}
	return nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
