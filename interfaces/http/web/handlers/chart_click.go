package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"benefitflow/application/services"
	"benefitflow/domain/chart"
	"benefitflow/interfaces/http/web/modal"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/pkg/common"
	pkgerrors "benefitflow/pkg/errors"
)

// ChartClickHandler resolves a clicked chart point into an open edit
// modal: classify the point, extract its domain id, reverse the edit
// route, retarget and open the dialog.
type ChartClickHandler struct {
	service  *services.AssessmentService
	registry *routes.Registry
	logger   *zap.Logger
}

// NewChartClickHandler creates the click handler.
func NewChartClickHandler(
	service *services.AssessmentService,
	registry *routes.Registry,
	logger *zap.Logger,
) *ChartClickHandler {
	return &ChartClickHandler{
		service:  service,
		registry: registry,
		logger:   logger,
	}
}

// HandleClick handles POST /assessments/{assessment_id}/chart/click.
//
// Clicks on the placeholder sentinel, or on links touching it, are
// ignored: 204, a debug log, no locator, no modal.
func (h *ChartClickHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")

	payload, err := pointPayload(r)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("missing chart point").WithCause(err))
		return
	}

	point, err := chart.DecodePoint(payload)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("malformed chart point").WithCause(err))
		return
	}

	// Placeholder rows carry the sentinel on either endpoint and no link
	// id, so any of those three marks the click non-editable.
	codec := h.service.Codec()
	placeholderLink := point.Kind != chart.KindNode &&
		(point.ID == "" || codec.IsDummy(point.From) || codec.IsDummy(point.To))
	if codec.IsDummy(point.ID) || placeholderLink {
		h.logger.Debug("ignoring click on placeholder point",
			zap.String("assessmentID", assessmentID),
			zap.String("pointID", point.ID),
		)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	url, err := routes.BuildLocator(point, assessmentID, codec).Resolve(h.registry)
	if err != nil {
		h.logger.Error("resolving edit route failed", zap.Error(err))
		common.RespondAppError(w, pkgerrors.NewInternalError("resolving edit route").WithCause(err))
		return
	}

	session := modal.NewWireSession()
	orchestrator := modal.NewOrchestrator(modal.ContainerSelector, session, session, session, h.logger)
	orchestrator.OpenEditModal(url)

	if err := session.WriteResponse(w); err != nil {
		h.logger.Error("writing modal response failed", zap.Error(err))
	}
}

// pointPayload extracts the clicked point's JSON, either as a raw JSON
// body or as the "point" form value the page shim posts.
func pointPayload(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return io.ReadAll(r.Body)
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	v := r.PostFormValue("point")
	if v == "" {
		return nil, pkgerrors.NewValidationError("point is required")
	}
	return []byte(v), nil
}
