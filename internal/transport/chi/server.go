package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	healthuc "github.com/kailas-cloud/matchdex/internal/usecase/health"
	ingestuc "github.com/kailas-cloud/matchdex/internal/usecase/ingest"
	matchuc "github.com/kailas-cloud/matchdex/internal/usecase/match"
)

// maxCSVBodyBytes caps the corpus upload size.
const maxCSVBodyBytes = 32 << 20

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeBadRequest              = "bad_request"
	codeValidationFailed        = "validation_failed"
	codeNotFound                = "not_found"
	codeEmbeddingProviderError  = "embedding_provider_error"
	codeGenerationProviderError = "generation_provider_error"
	codeInternalError           = "internal_error"
)

// MatchRequest is the body of POST /api/matches.
type MatchRequest struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
}

// SessionRecordResponse is one joined match record as returned to the caller.
type SessionRecordResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Abstract         string `json:"abstract"`
	SearchGUID       string `json:"search_guid"`
	MatchingScore    int    `json:"matching_score"`
	MatchingComments string `json:"matching_comments"`
}

// LoadCorpusResponse reports a corpus load.
type LoadCorpusResponse struct {
	Loaded int `json:"loaded"`
}

// BackfillResponse reports an embedding backfill run.
type BackfillResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// HealthResponse reports aggregated component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the matching pipeline over HTTP.
type Server struct {
	matches       *matchuc.Service
	ingest        *ingestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	matches *matchuc.Service,
	ingest *ingestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		matches: matches,
		ingest:  ingest,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrGenerationProviderError, http.StatusBadGateway, codeGenerationProviderError),
	}
	return s
}

// RegisterRoutes mounts all API routes on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/api/matches", s.CreateMatch)
	r.Get("/api/sessions/{guid}", s.GetSession)
	r.Post("/api/corpus/load", s.LoadCorpus)
	r.Post("/api/corpus/embeddings", s.BackfillEmbeddings)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateMatch handles POST /api/matches.
func (s *Server) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := domain.NewQuery(req.Title, req.Abstract)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	records, err := s.matches.Match(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordsToResponse(records))
}

// GetSession handles GET /api/sessions/{guid}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	guid := chi.URLParam(r, "guid")
	if _, err := uuid.Parse(guid); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Invalid session guid")
		return
	}

	records, err := s.matches.Session(r.Context(), guid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordsToResponse(records))
}

// LoadCorpus handles POST /api/corpus/load. The body is the CSV itself.
func (s *Server) LoadCorpus(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxCSVBodyBytes)

	n, err := s.ingest.LoadCSV(r.Context(), body)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoadCorpusResponse{Loaded: n})
}

// BackfillEmbeddings handles POST /api/corpus/embeddings.
func (s *Server) BackfillEmbeddings(w http.ResponseWriter, r *http.Request) {
	report, err := s.ingest.BackfillEmbeddings(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, BackfillResponse{
		Processed: report.Processed,
		Failed:    report.Failed,
	})
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func recordsToResponse(records []domain.SessionRecord) []SessionRecordResponse {
	items := make([]SessionRecordResponse, len(records))
	for i, rec := range records {
		items[i] = SessionRecordResponse{
			ID:               rec.ProjectID,
			Title:            rec.Title,
			Abstract:         rec.Abstract,
			SearchGUID:       rec.SearchGUID,
			MatchingScore:    rec.MatchingScore,
			MatchingComments: rec.MatchingComments,
		}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrEmbeddingProviderError,
		domain.ErrGenerationProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
