package router

import (
	"net/http"

	"github.com/BerylCAtieno/document-analyzer-api/internal/config"
	"github.com/BerylCAtieno/document-analyzer-api/internal/handlers"
	"github.com/BerylCAtieno/document-analyzer-api/internal/middleware"
	"github.com/BerylCAtieno/document-analyzer-api/internal/services"
	"github.com/BerylCAtieno/document-analyzer-api/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(service services.AnalysisService, cfg *config.Config, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger, cfg.LogLevel == "debug"))

	h := handlers.NewAnalysisHandler(service, logger)

	// Probes and service info
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Readiness).Methods(http.MethodGet)
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)

	// Analysis endpoint
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", h.AnalyzeDocument).Methods(http.MethodPost)

	// CORS wraps the router itself so preflight requests are answered even
	// for method/route combinations mux would otherwise reject.
	return middleware.CORS(cfg.CORSOrigins)(r)
}
