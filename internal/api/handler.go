package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/health-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/health-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/report"
	"github.com/povarna/generative-ai-agents/health-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/health-agent/internal/validation"
	"github.com/povarna/generative-ai-agents/health-agent/internal/wellness"
	"github.com/rs/zerolog"
)

const (
	apiVersion     = "1.0.0"
	maxImageBytes  = 10 << 20
	imageFormField = "image"
)

type QueryProcessor interface {
	Process(ctx context.Context, req models.QueryRequest) models.QueryOutcome
}

type Recommender interface {
	Recommend(profile models.UserProfile) (models.Recommendation, error)
}

type ReportProcessor interface {
	Simplify(text string) models.SimplifiedReport
	Process(ctx context.Context, image []byte) (models.SimplifiedReport, error)
}

type Handler struct {
	queries     QueryProcessor
	knowledge   *retrieval.Store
	recommender Recommender
	reports     ReportProcessor
	logger      *zerolog.Logger
}

func NewHandler(
	queries QueryProcessor,
	knowledge *retrieval.Store,
	recommender Recommender,
	reports ReportProcessor,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		queries:     queries,
		knowledge:   knowledge,
		recommender: recommender,
		reports:     reports,
		logger:      logger,
	}
}

// POST /api/v1/query
// Body: QueryRequest
// Returns: QueryOutcome
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest models.QueryRequest
	if err := req.ReadEntity(&queryRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := validation.Struct(queryRequest); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	outcome := h.queries.Process(req.Request.Context(), queryRequest)

	h.logger.Info().
		Str("id", outcome.ID).
		Str("intent", string(outcome.Intent)).
		Float64("confidence", outcome.Confidence).
		Str("safety", string(outcome.Safety)).
		Msg("Query answered")

	resp.WriteHeaderAndEntity(http.StatusOK, outcome)
}

// POST /api/v1/recommendation
func (h *Handler) Recommend(req *restful.Request, resp *restful.Response) {
	var profile models.UserProfile
	if err := req.ReadEntity(&profile); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := validation.Struct(profile); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	recommendation, err := h.recommender.Recommend(profile)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, wellness.ErrNoTips) {
			status = http.StatusServiceUnavailable
		}
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, recommendation)
}

// POST /api/v1/nudge
func (h *Handler) Nudge(req *restful.Request, resp *restful.Response) {
	var data models.HealthData
	if err := req.ReadEntity(&data); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := validation.Struct(data); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, wellness.CheckNudge(data))
}

// POST /api/v1/report/simplify
func (h *Handler) SimplifyReport(req *restful.Request, resp *restful.Response) {
	var body SimplifyRequest
	if err := req.ReadEntity(&body); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := validation.Struct(body); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		middleware.HandleError(resp, middleware.ErrEmptyReportText, http.StatusBadRequest)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, h.reports.Simplify(body.Text))
}

// POST /api/v1/report/ocr
// Multipart form with an "image" file (PNG or JPEG). The upload is kept in
// memory only.
func (h *Handler) OCRReport(req *restful.Request, resp *restful.Response) {
	image, err := readImage(resp, req.Request)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, middleware.ErrImageTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		middleware.HandleError(resp, err, status)
		return
	}

	simplified, err := h.reports.Process(req.Request.Context(), image)
	if err != nil {
		middleware.HandleError(resp, err, reportErrorStatus(err))
		return
	}

	h.logger.Info().Int("terms", len(simplified.TermsFound)).Msg("Report simplified")
	resp.WriteHeaderAndEntity(http.StatusOK, simplified)
}

// GET /api/v1/knowledge/topics
func (h *Handler) Topics(req *restful.Request, resp *restful.Response) {
	idx := h.knowledge.Index()
	resp.WriteHeaderAndEntity(http.StatusOK, TopicsResponse{
		Count:  idx.Len(),
		Topics: idx.Topics(),
	})
}

// GET /api/v1/knowledge/search?q=...&top_k=3
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	topK := retrieval.DefaultTopK
	if raw := req.QueryParameter("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			middleware.HandleError(resp, middleware.ErrInvalidTopK, http.StatusBadRequest)
			return
		}
		topK = parsed
	}

	query := req.QueryParameter("q")
	matches := h.knowledge.Index().SearchScored(query, topK)
	if matches == nil {
		matches = []retrieval.Match{}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, SearchResponse{Query: query, Matches: matches})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:           "ok",
		Version:          apiVersion,
		KnowledgeEntries: h.knowledge.Index().Len(),
	})
}

func readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+(1<<20))

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, middleware.ErrImageTooLarge
		}
		return nil, fmt.Errorf("missing %q form file: %w", imageFormField, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, middleware.ErrImageTooLarge
	}
	if len(data) == 0 {
		return nil, middleware.ErrEmptyImage
	}
	return data, nil
}

func reportErrorStatus(err error) int {
	switch {
	case errors.Is(err, report.ErrEmptyImage), errors.Is(err, report.ErrNoText):
		return http.StatusUnprocessableEntity
	case errors.Is(err, bedrock.ErrOCRUnavailable), errors.Is(err, report.ErrOCRDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, report.ErrUnsupportedImage):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadGateway
	}
}
