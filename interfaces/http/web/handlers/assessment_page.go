package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"benefitflow/application/services"
	"benefitflow/interfaces/http/web/chartview"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/interfaces/http/web/templates"
	"benefitflow/pkg/common"
	pkgerrors "benefitflow/pkg/errors"
)

// AssessmentPageHandler renders the chart page.
type AssessmentPageHandler struct {
	service  *services.AssessmentService
	registry *routes.Registry
	renderer *templates.Renderer
	logger   *zap.Logger
}

// NewAssessmentPageHandler creates the page handler.
func NewAssessmentPageHandler(
	service *services.AssessmentService,
	registry *routes.Registry,
	renderer *templates.Renderer,
	logger *zap.Logger,
) *AssessmentPageHandler {
	return &AssessmentPageHandler{
		service:  service,
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

type pageData struct {
	Title       string
	OptionsJSON template.JS
}

// Show handles GET /assessments/{assessment_id}.
//
// The render gate runs first: an empty series renders the informational
// placeholder and nothing else; no chart, no click wiring.
func (h *AssessmentPageHandler) Show(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")

	assessment, series, err := h.service.ChartSeries(r.Context(), assessmentID)
	if err != nil {
		h.logger.Warn("loading assessment failed",
			zap.String("assessmentID", assessmentID),
			zap.Error(err),
		)
		http.Error(w, "assessment not found", pkgerrors.HTTPStatusOf(err))
		return
	}

	if series.IsEmpty() {
		html, err := h.renderer.Render(templates.EmptyAssessment, pageData{Title: assessment.Title()})
		if err != nil {
			h.renderError(w, err)
			return
		}
		common.RespondHTML(w, http.StatusOK, html)
		return
	}

	clickURL, err := h.registry.Reverse(routes.RouteChartClick, map[string]string{
		"assessment_id": assessmentID,
	})
	if err != nil {
		h.renderError(w, err)
		return
	}

	opts := chartview.BuildOptions(assessment.Title(), series, clickURL)
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		h.renderError(w, err)
		return
	}

	html, err := h.renderer.Render(templates.AssessmentPage, pageData{
		Title:       assessment.Title(),
		OptionsJSON: template.JS(optsJSON),
	})
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.RespondHTML(w, http.StatusOK, html)
}

func (h *AssessmentPageHandler) renderError(w http.ResponseWriter, err error) {
	h.logger.Error("rendering assessment page failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
