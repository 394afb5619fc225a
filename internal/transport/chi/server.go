package chi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/logger"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
)

// Form field names.
const (
	FieldQuery       = "query"
	FieldContentType = "content_type"
)

const maxFormBytes = 64 << 10

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Searcher runs a form search.
type Searcher interface {
	Search(ctx context.Context, query, contentType string) ([]result.Result, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server serves the search form and the operational endpoints.
type Server struct {
	search  Searcher
	health  HealthChecker
	metrics http.Handler
	logger  *zap.Logger
}

// NewServer creates an HTTP server. metrics defaults to the Prometheus
// default registry handler when nil.
func NewServer(search Searcher, health HealthChecker, metrics http.Handler, logger *zap.Logger) *Server {
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	return &Server{search: search, health: health, metrics: metrics, logger: logger}
}

// Routes registers all handlers on r.
func (s *Server) Routes(r gochi.Router) {
	r.Get("/", s.Index)
	r.Post("/", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", s.metrics)
}

// pageData is the template model for the search page.
type pageData struct {
	Query        string
	SelectedType string
	ContentTypes []string
	Searched     bool
	Results      []result.Result
	Error        string
}

func newPage(query, selected string) pageData {
	types := []string{request.AllContentTypes}
	for _, ct := range domdoc.ContentTypes() {
		types = append(types, string(ct))
	}
	return pageData{Query: query, SelectedType: selected, ContentTypes: types}
}

// Index handles GET /: an empty form with every category selected.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, newPage("", request.AllContentTypes))
}

// Search handles POST /: runs the submitted query and renders the results
// below the form, echoing the query and the selected category.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		page := newPage("", request.AllContentTypes)
		page.Error = "Invalid form submission"
		s.render(w, r, http.StatusBadRequest, page)
		return
	}

	query := r.PostForm.Get(FieldQuery)
	contentType := r.PostForm.Get(FieldContentType)

	page := newPage(query, contentType)
	results, err := s.search.Search(r.Context(), query, contentType)
	if err != nil {
		status, msg := searchErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.FromContext(r.Context()).Error("search request failed", zap.Error(err))
		}
		page.Error = msg
		s.render(w, r, status, page)
		return
	}

	page.Searched = true
	page.Results = results
	s.render(w, r, http.StatusOK, page)
}

// searchErrorStatus maps a search failure to a status and a message safe to show.
func searchErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrQuery):
		return http.StatusBadGateway, "Search is unavailable: the document store could not run the query."
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadGateway, "Search returned a malformed document."
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, page); err != nil {
		logger.FromContext(r.Context()).Error("render template", zap.Error(err))
	}
}

// healthResponse is the JSON body of GET /health.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
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

	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
