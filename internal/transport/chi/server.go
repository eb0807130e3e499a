package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/request"
	"github.com/clipstack/tagrank/internal/domain/search/result"
	"github.com/clipstack/tagrank/internal/metrics"
	contentuc "github.com/clipstack/tagrank/internal/usecase/content"
	engagementuc "github.com/clipstack/tagrank/internal/usecase/engagement"
	feeduc "github.com/clipstack/tagrank/internal/usecase/feed"
	healthuc "github.com/clipstack/tagrank/internal/usecase/health"
	searchuc "github.com/clipstack/tagrank/internal/usecase/search"
)

// viewerHeader carries the end-user identity. The bearer key authenticates
// the calling service; the viewer rides alongside and may be absent.
const viewerHeader = "X-Viewer-ID"

// Machine-readable error codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInvalidQuery     = "invalid_query"
	codeItemNotFound     = "item_not_found"
	codeForbidden        = "forbidden"
	codeStoreUnavailable = "store_unavailable"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the use case services into chi HTTP handlers.
type Server struct {
	search        *searchuc.Service
	content       *contentuc.Service
	feed          *feeduc.Service
	engage        *engagementuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	content *contentuc.Service,
	feed *feeduc.Service,
	engage *engagementuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		content: content,
		feed:    feed,
		engage:  engage,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, codeItemNotFound),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, codeForbidden),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// Routes registers all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/v1/search", s.SearchItems)

	r.Route("/v1/items", func(r chi.Router) {
		r.Post("/", s.CreateItem)
		r.Get("/", s.ListOwnItems)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetItem)
			r.Patch("/", s.UpdateItem)
			r.Delete("/", s.DeleteItem)
			r.Post("/visibility", s.SetVisibility)
			r.Post("/engagement", s.RecordEngagement)
		})
	})

	r.Get("/v1/feed", s.Feed)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchItems handles GET /v1/search.
func (s *Server) SearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	req := request.New(q, viewerID(r), queryInt(r, "page"), queryInt(r, "limit"))

	page, err := s.search.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			metrics.SearchesTotal.WithLabelValues("invalid_query").Inc()
		} else {
			metrics.SearchesTotal.WithLabelValues("error").Inc()
		}
		s.handleDomainError(w, err)
		return
	}

	outcome := "ok"
	if page.TotalCount == 0 {
		outcome = "empty"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchCandidates.Observe(float64(page.TotalCount))
	if page.Degraded {
		metrics.SearchDegradedTotal.Inc()
	}

	writeJSON(w, http.StatusOK, searchPageToResponse(page))
}

// CreateItem handles POST /v1/items.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vis := item.Visibility(req.Visibility)
	if req.Visibility == "" {
		vis = item.Public
	}

	it, err := s.content.Create(r.Context(), owner, req.Title, req.Description, vis, req.ThumbnailRef, req.DurationSec)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/v1/items/"+it.ID())
	writeJSON(w, http.StatusCreated, itemToResponse(it))
}

// GetItem handles GET /v1/items/{id}. Each fetch counts a view.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.content.Get(r.Context(), chi.URLParam(r, "id"), viewerID(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(it))
}

// UpdateItem handles PATCH /v1/items/{id}.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	it, err := s.content.UpdateText(r.Context(), chi.URLParam(r, "id"), owner, req.Title, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(it))
}

// SetVisibility handles POST /v1/items/{id}/visibility.
func (s *Server) SetVisibility(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var req setVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	it, err := s.content.SetVisibility(r.Context(), chi.URLParam(r, "id"), owner, item.Visibility(req.Visibility))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(it))
}

// DeleteItem handles DELETE /v1/items/{id}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireViewer(w, r)
	if !ok {
		return
	}

	if err := s.content.Delete(r.Context(), chi.URLParam(r, "id"), owner); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOwnItems handles GET /v1/items. Returns the viewer's own items,
// private included, newest first.
func (s *Server) ListOwnItems(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireViewer(w, r)
	if !ok {
		return
	}

	items, total, err := s.content.ListByOwner(r.Context(), owner, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = itemToResponse(it)
	}
	writeJSON(w, http.StatusOK, itemListResponse{Items: out, TotalCount: total})
}

// RecordEngagement handles POST /v1/items/{id}/engagement. Ingests like and
// comment counter deltas from the engagement collaborator.
func (s *Server) RecordEngagement(w http.ResponseWriter, r *http.Request) {
	var req recordEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	snap, err := s.engage.Record(r.Context(), chi.URLParam(r, "id"), req.Likes, req.Comments)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, engagementResponse{Likes: snap.Likes, Comments: snap.Comments})
}

// Feed handles GET /v1/feed. The default scope is the public recency feed;
// scope=subscribed serves the viewer's subscriptions feed.
func (s *Server) Feed(w http.ResponseWriter, r *http.Request) {
	page, limit := queryInt(r, "page"), queryInt(r, "limit")

	var (
		fp  feeduc.Page
		err error
	)
	switch scope := r.URL.Query().Get("scope"); scope {
	case "", "public":
		fp, err = s.feed.Public(r.Context(), page, limit)
	case "subscribed":
		viewer, ok := requireViewer(w, r)
		if !ok {
			return
		}
		fp, err = s.feed.Subscribed(r.Context(), viewer, page, limit)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "scope must be \"public\" or \"subscribed\"")
		return
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]itemResponse, len(fp.Items))
	for i, it := range fp.Items {
		out[i] = itemToResponse(it)
	}
	writeJSON(w, http.StatusOK, itemListResponse{
		Items:      out,
		Page:       fp.Page,
		Limit:      fp.Limit,
		TotalCount: fp.TotalCount,
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

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func viewerID(r *http.Request) string {
	return r.Header.Get(viewerHeader)
}

// requireViewer enforces the viewer identity header on write and
// owner-scoped routes.
func requireViewer(w http.ResponseWriter, r *http.Request) (string, bool) {
	viewer := viewerID(r)
	if viewer == "" {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, viewerHeader+" header is required")
		return "", false
	}
	return viewer, true
}

func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrValidation,
		domain.ErrItemNotFound,
		domain.ErrForbidden,
		domain.ErrStoreUnavailable,
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

func itemToResponse(it item.Item) itemResponse {
	return itemResponse{
		ID:           it.ID(),
		OwnerID:      it.OwnerID(),
		Title:        it.Title(),
		Description:  it.Description(),
		Tags:         it.Tags(),
		Visibility:   string(it.Visibility()),
		ThumbnailRef: it.ThumbnailRef(),
		DurationSec:  it.DurationSec(),
		Views:        it.Views(),
		CreatedAt:    time.Unix(it.CreatedAt(), 0).UTC(),
	}
}

func searchPageToResponse(p result.Page) searchPageResponse {
	entries := make([]searchEntryResponse, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = searchEntryResponse{
			ID:           e.ID,
			Title:        e.Title,
			ThumbnailRef: e.ThumbnailRef,
			OwnerID:      e.OwnerID,
			Views:        e.Views,
			Likes:        e.Likes,
			Comments:     e.Comments,
			Score:        e.Score,
			CreatedAt:    time.Unix(e.CreatedAt, 0).UTC(),
		}
	}
	return searchPageResponse{
		Items:      entries,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: p.TotalCount,
		Degraded:   p.Degraded,
	}
}
