package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/BerylCAtieno/document-analyzer-api/internal/services"
	"github.com/BerylCAtieno/document-analyzer-api/internal/utils"
)

const apiVersion = "1.0.0"

type AnalysisHandler struct {
	service services.AnalysisService
	logger  *utils.Logger
}

func NewAnalysisHandler(service services.AnalysisService, logger *utils.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// AnalyzeDocument accepts a multipart upload with a single "file" part and
// runs the analysis pipeline synchronously. The part is streamed straight
// into the service; the handler never buffers the whole file.
func (h *AnalysisHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("Expected multipart form upload"))
		return
	}

	part, err := filePart(mr)
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("No file provided"))
		return
	}
	defer part.Close()

	result, err := h.service.Analyze(r.Context(), part, part.FileName())
	if err != nil {
		h.respondError(w, err)
		return
	}

	// Pipeline failures ride a 200; callers branch on the status field.
	h.respondJSON(w, http.StatusOK, result)
}

func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

func (h *AnalysisHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ready(r.Context()); err != nil {
		h.logger.Warn("Readiness check failed", "error", err)
		h.respondError(w, utils.NewServiceUnavailableError("Service not ready"))
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":          "ready",
		"converter_ready": true,
		"storage_ready":   true,
	})
}

func (h *AnalysisHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"service": "Document Analyzer API",
		"version": apiVersion,
		"status":  "running",
		"health":  "/health",
		"ready":   "/ready",
		"api":     "/api/v1/analyze",
	})
}

// filePart scans the multipart stream for the part named "file".
func filePart(mr *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, err
		}
		if part.FormName() == "file" {
			return part, nil
		}
		part.Close()
	}
}

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
