package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/delivery/http/request"
	"github.com/user/seo-monitor/internal/delivery/http/response"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	"github.com/user/seo-monitor/internal/usecase"
	"go.uber.org/zap"
)

const maxBodyBytes = 32 << 20

// Pinger is a dependency that reports its health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	analyzer usecase.URLAnalyzer
	auditor  usecase.PageAuditor
	checks   map[string]Pinger
	logger   *zap.Logger
}

// NewHandler creates a Handler. checks are pinged by the health endpoint.
func NewHandler(analyzer usecase.URLAnalyzer, auditor usecase.PageAuditor, checks map[string]Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		auditor:  auditor,
		checks:   checks,
		logger:   logger,
	}
}

func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req request.URLsRequest
	if !h.decode(w, r, &req) {
		return
	}

	normalized, err := h.analyzer.Normalize(req.URLs)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to normalize URLs")
		return
	}

	resp := response.NormalizeResponse{Results: make([]response.NormalizedURL, len(req.URLs))}
	for i, u := range req.URLs {
		resp.Results[i] = response.NormalizedURL{Original: u, Normalized: normalized[i]}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req request.URLsRequest
	if !h.decode(w, r, &req) {
		return
	}

	results, err := h.analyzer.AnalyzeBatch(r.Context(), req.URLs, req.Force)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to analyze URLs")
		return
	}
	h.writeJSON(w, http.StatusOK, response.AnalyzeResponse{Results: results})
}

func (h *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	var req request.GroupRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.analyzer.GroupURLs(r.Context(), req.Records)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to group URLs")
		return
	}
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) HandleCannibalization(w http.ResponseWriter, r *http.Request) {
	var req request.CannibalizationRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.analyzer.DetectCannibalization(r.Context(), req.Queries)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to detect cannibalization")
		return
	}
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyzer.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to load report")
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	kind := entity.ReportKind(r.URL.Query().Get("kind"))
	switch kind {
	case "", entity.ReportKindGrouping, entity.ReportKindCannibalization:
	default:
		h.writeJSONError(w, "Unknown report kind", http.StatusBadRequest)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeJSONError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	reports, err := h.analyzer.ListReports(r.Context(), kind, limit)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to list reports")
		return
	}
	if reports == nil {
		reports = []*entity.StoredReport{}
	}
	h.writeJSON(w, http.StatusOK, response.ReportListResponse{Reports: reports})
}

func (h *Handler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	var req request.AuditRequest
	if !h.decode(w, r, &req) {
		return
	}

	if !strings.HasPrefix(req.URL, "/") {
		u, err := url.ParseRequestURI(req.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			h.writeJSONError(w, "Invalid URL format", http.StatusBadRequest)
			return
		}
	}

	audit, err := h.auditor.Audit(r.Context(), req.URL, req.Slugs)
	if err != nil {
		h.writeUseCaseError(w, err, "Failed to audit page")
		return
	}
	h.writeJSON(w, http.StatusOK, audit)
}

func (h *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	var req request.TrendRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Current < 0 || req.Previous < 0 {
		h.writeJSONError(w, "Metric values must not be negative", http.StatusBadRequest)
		return
	}

	change, ok := analysis.CalcPercentChange(req.Current, req.Previous)
	resp := response.TrendResponse{
		Current:  req.Current,
		Previous: req.Previous,
		Display:  analysis.FormatPercentChange(change, ok),
		Trend:    analysis.TrendOf(change, ok),
	}
	if ok {
		resp.PercentChange = &change
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := response.HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.logger.Error("health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = "unhealthy"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "healthy"
	}
	h.writeJSON(w, status, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeUseCaseError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, usecase.ErrEmptyInput), errors.Is(err, usecase.ErrTooManyItems):
		h.writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrReportNotFound):
		h.writeJSONError(w, "Report not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrFetchFailed):
		h.writeJSONError(w, err.Error(), http.StatusBadGateway)
	default:
		h.logger.Error(message, zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
