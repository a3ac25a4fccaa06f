// Package httpapi exposes the intake engine over a small JSON REST API.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/service"
)

// Services groups the use cases the API depends on.
type Services struct {
	Cases           service.CaseService
	Intake          service.IntakeService
	Recommendations service.RecommendationService
	Progress        service.ProgressService
}

// Handler wires REST endpoints to the intake services.
type Handler struct {
	svc              Services
	logger           *slog.Logger
	metrics          *Metrics
	defaultViewpoint domain.Viewpoint
}

func New(svc Services, logger *slog.Logger, metrics *Metrics, defaultViewpoint domain.Viewpoint) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if !defaultViewpoint.Valid() {
		defaultViewpoint = domain.ViewpointGeneral
	}
	return &Handler{svc: svc, logger: logger, metrics: metrics, defaultViewpoint: defaultViewpoint}
}

// Register mounts the intake endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Get("/board", h.HandleBoard)
	r.Route("/cases", func(r chi.Router) {
		r.Get("/", h.HandleListCases)
		r.Post("/", h.HandleCreateCase)
		r.Route("/{caseID}", func(r chi.Router) {
			r.Get("/", h.HandleGetCase)
			r.Get("/forms/{domain}", h.HandleGetForm)
			r.Put("/forms/{domain}/answers/{field}", h.HandleAnswer)
			r.Post("/forms/{domain}/submit", h.HandleSubmit)
			r.Get("/recommendations", h.HandleRecommendations)
			r.Get("/goals", h.HandleGoals)
			r.Get("/progress", h.HandleProgress)
		})
	})
}

// NewRouter builds the full HTTP handler, including /metrics served from
// gatherer.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)
	h.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// instrument records request latency by route pattern once chi has
// matched the route.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(route, r.Method, strconv.Itoa(status), time.Since(start))
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleListCases handles GET /cases[?status=closed|archived=true].
func (h *Handler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.CaseFilter{Status: domain.CaseStatus(q.Get("status"))}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(w, badRequest{msg: "status must be active, closed or archived"})
		return
	}
	if v := q.Get("archived"); v != "" {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, badRequest{msg: "archived must be a boolean"})
			return
		}
		filter.IncludeArchived = archived
	}

	cases, err := h.svc.Cases.List(r.Context(), filter)
	if err != nil {
		logFailure(h.logger, r, "listing cases failed", err)
		writeError(w, err)
		return
	}
	out := make([]caseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, fromCase(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleCreateCase(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := req.toCase()
	if err == nil {
		err = h.svc.Cases.Create(r.Context(), c)
	}
	if err != nil {
		logFailure(h.logger, r, "creating case failed", err)
		writeError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "case opened", "case_id", c.ID)
	writeJSON(w, http.StatusCreated, fromCase(c))
}

func (h *Handler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Cases.GetByID(r.Context(), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fromCase(c))
}

func (h *Handler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	d, err := domain.ParseFormDomain(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.svc.Intake.Form(r.Context(), chi.URLParam(r, "caseID"), d)
	if err != nil {
		logFailure(h.logger, r, "loading form failed", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleAnswer handles PUT /cases/{caseID}/forms/{domain}/answers/{field}
// with a body of {"value": <json>}. A null value clears the answer.
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	d, err := domain.ParseFormDomain(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	var body answerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	value, err := body.decode()
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.svc.Intake.Answer(r.Context(), contract.AnswerRequest{
		CaseID: chi.URLParam(r, "caseID"),
		Domain: d,
		Field:  chi.URLParam(r, "field"),
		Value:  value,
	})
	if err != nil {
		logFailure(h.logger, r, "recording answer failed", err)
		writeError(w, err)
		return
	}
	h.metrics.IncrementAnswer(string(d))
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	d, err := domain.ParseFormDomain(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	caseID := chi.URLParam(r, "caseID")
	resp, err := h.svc.Intake.Submit(r.Context(), caseID, d)
	if err != nil {
		logFailure(h.logger, r, "submitting form failed", err)
		writeError(w, err)
		return
	}

	h.metrics.IncrementSubmission(string(d))
	h.logger.InfoContext(r.Context(), "form submitted",
		"case_id", caseID,
		"domain", d,
		"recommendations", len(resp.Recommendations),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Recommendations.List(r.Context(), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Recommendations.Goals(r.Context(), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if goals == nil {
		goals = []questionnaire.Goal{}
	}
	writeJSON(w, http.StatusOK, goals)
}

// HandleProgress handles GET /cases/{caseID}/progress?viewpoint=<vp>|all.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	req := contract.NewProgressRequest(chi.URLParam(r, "caseID"))
	switch vp := strings.TrimSpace(r.URL.Query().Get("viewpoint")); {
	case vp == "":
		req.Viewpoint = h.defaultViewpoint
	case strings.EqualFold(vp, "all"):
		req.All = true
	default:
		parsed, err := domain.ParseViewpoint(vp)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Viewpoint = parsed
	}

	resp, err := h.svc.Progress.Progress(r.Context(), req)
	if err != nil {
		logFailure(h.logger, r, "computing progress failed", err)
		writeError(w, err)
		return
	}
	for _, res := range resp.Results {
		h.metrics.IncrementProgress(string(res.Viewpoint))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	req := contract.NewBoardRequest()
	req.Viewpoint = h.defaultViewpoint
	if vp := r.URL.Query().Get("viewpoint"); vp != "" {
		parsed, err := domain.ParseViewpoint(vp)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Viewpoint = parsed
	}

	resp, err := h.svc.Progress.Board(r.Context(), req)
	if err != nil {
		logFailure(h.logger, r, "building board failed", err)
		writeError(w, err)
		return
	}
	h.metrics.IncrementProgress(string(req.Viewpoint))
	writeJSON(w, http.StatusOK, resp)
}
