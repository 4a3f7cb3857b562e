package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"benefitflow/application/services"
	"benefitflow/domain/core/entities"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/interfaces/http/web/templates"
	"benefitflow/pkg/common"
	pkgerrors "benefitflow/pkg/errors"
	"benefitflow/pkg/utils"
)

// EditFormHandler serves the modal edit-form fragments and applies the
// submitted edits.
type EditFormHandler struct {
	service  *services.AssessmentService
	registry *routes.Registry
	renderer *templates.Renderer
	logger   *zap.Logger
}

// NewEditFormHandler creates the edit-form handler.
func NewEditFormHandler(
	service *services.AssessmentService,
	registry *routes.Registry,
	renderer *templates.Renderer,
	logger *zap.Logger,
) *EditFormHandler {
	return &EditFormHandler{
		service:  service,
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

type nodeFormData struct {
	Node      *entities.Node
	UpdateURL string
}

// GetNodeForm handles GET /assessments/{assessment_id}/nodes/{node_id}/edit.
func (h *EditFormHandler) GetNodeForm(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")
	nodeID := chi.URLParam(r, "node_id")

	node, err := h.service.GetNode(r.Context(), assessmentID, nodeID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	updateURL, err := h.registry.Reverse(routes.RouteNodeUpdate, map[string]string{
		"assessment_id": assessmentID,
		"node_id":       nodeID,
	})
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("resolving update route").WithCause(err))
		return
	}

	html, err := h.renderer.Render(templates.NodeEditForm, nodeFormData{Node: node, UpdateURL: updateURL})
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("rendering node form").WithCause(err))
		return
	}
	common.RespondHTML(w, http.StatusOK, html)
}

type linkFormData struct {
	Link       *entities.Link
	SourceName string
	TargetName string
	UpdateURL  string
}

// GetLinkForm handles GET /assessments/{assessment_id}/links/{link_id}/edit.
func (h *EditFormHandler) GetLinkForm(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")
	linkID := chi.URLParam(r, "link_id")

	assessment, err := h.service.GetAssessment(r.Context(), assessmentID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	link, err := h.service.GetLink(r.Context(), assessmentID, linkID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	updateURL, err := h.registry.Reverse(routes.RouteLinkUpdate, map[string]string{
		"assessment_id": assessmentID,
		"link_id":       linkID,
	})
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("resolving update route").WithCause(err))
		return
	}

	data := linkFormData{Link: link, UpdateURL: updateURL}
	if src := assessment.NodeByID(link.Source()); src != nil {
		data.SourceName = src.DisplayName()
	}
	if dst := assessment.NodeByID(link.Target()); dst != nil {
		data.TargetName = dst.DisplayName()
	}

	html, err := h.renderer.Render(templates.LinkEditForm, data)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("rendering link form").WithCause(err))
		return
	}
	common.RespondHTML(w, http.StatusOK, html)
}

// UpdateNodeRequest represents the submitted node edit
type UpdateNodeRequest struct {
	Title     string `validate:"required,min=1,max=200"`
	ShortName string `validate:"max=100"`
	Tooltip   string `validate:"max=2000"`
}

// UpdateNode handles PUT /assessments/{assessment_id}/nodes/{node_id}.
func (h *EditFormHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")
	nodeID := chi.URLParam(r, "node_id")

	if err := r.ParseForm(); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid form body").WithCause(err))
		return
	}
	req := UpdateNodeRequest{
		Title:     r.PostFormValue("title"),
		ShortName: r.PostFormValue("short_name"),
		Tooltip:   r.PostFormValue("tooltip"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	node, err := h.service.UpdateNode(r.Context(), assessmentID, nodeID, services.UpdateNodeInput{
		Title:     req.Title,
		ShortName: req.ShortName,
		Tooltip:   req.Tooltip,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	html, err := h.renderer.Render(templates.NodeUpdatedBadge, nodeFormData{Node: node})
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("rendering confirmation").WithCause(err))
		return
	}
	w.Header().Set("HX-Trigger", `{"chart:refresh":{}}`)
	common.RespondHTML(w, http.StatusOK, html)
}

// UpdateLinkRequest represents the submitted link edit
type UpdateLinkRequest struct {
	Weight    float64 `validate:"gte=0"`
	Rationale string  `validate:"max=2000"`
}

// UpdateLink handles PUT /assessments/{assessment_id}/links/{link_id}.
func (h *EditFormHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessment_id")
	linkID := chi.URLParam(r, "link_id")

	if err := r.ParseForm(); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid form body").WithCause(err))
		return
	}
	weight, err := strconv.ParseFloat(r.PostFormValue("weight"), 64)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("weight must be a number"))
		return
	}
	req := UpdateLinkRequest{
		Weight:    weight,
		Rationale: r.PostFormValue("rationale"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	link, err := h.service.UpdateLink(r.Context(), assessmentID, linkID, services.UpdateLinkInput{
		Weight:    req.Weight,
		Rationale: req.Rationale,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	html, err := h.renderer.Render(templates.LinkUpdatedBadge, linkFormData{Link: link})
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("rendering confirmation").WithCause(err))
		return
	}
	w.Header().Set("HX-Trigger", `{"chart:refresh":{}}`)
	common.RespondHTML(w, http.StatusOK, html)
}
