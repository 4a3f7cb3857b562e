package services

import (
	"context"

	"go.uber.org/zap"

	"benefitflow/application/ports"
	"benefitflow/domain/chart"
	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
	"benefitflow/domain/identifier"
	pkgerrors "benefitflow/pkg/errors"
)

// AssessmentService exposes the application operations the web layer needs:
// loading assessments, deriving their chart series and applying edits.
type AssessmentService struct {
	repo   ports.AssessmentRepository
	codec  identifier.Codec
	logger *zap.Logger
}

// NewAssessmentService creates an assessment service.
func NewAssessmentService(repo ports.AssessmentRepository, codec identifier.Codec, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		repo:   repo,
		codec:  codec,
		logger: logger,
	}
}

// Codec exposes the identifier codec shared with the web layer.
func (s *AssessmentService) Codec() identifier.Codec {
	return s.codec
}

// GetAssessment loads an assessment by its string id.
func (s *AssessmentService) GetAssessment(ctx context.Context, id string) (*entities.Assessment, error) {
	assessmentID, err := valueobjects.NewAssessmentIDFromString(id)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("assessment")
	}
	return s.repo.GetByID(ctx, assessmentID)
}

// ChartSeries loads an assessment and flattens its graph into the sankey
// series the chart page renders.
func (s *AssessmentService) ChartSeries(ctx context.Context, id string) (*entities.Assessment, chart.SankeySeries, error) {
	assessment, err := s.GetAssessment(ctx, id)
	if err != nil {
		return nil, chart.SankeySeries{}, err
	}
	return assessment, chart.BuildSeries(assessment, s.codec), nil
}

// GetNode loads one node of an assessment by its domain id.
func (s *AssessmentService) GetNode(ctx context.Context, assessmentID, nodeID string) (*entities.Node, error) {
	assessment, err := s.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	id, err := valueobjects.NewNodeIDFromString(nodeID)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("node")
	}
	node := assessment.NodeByID(id)
	if node == nil {
		return nil, pkgerrors.NewNotFoundError("node")
	}
	return node, nil
}

// GetLink loads one link of an assessment by its domain id.
func (s *AssessmentService) GetLink(ctx context.Context, assessmentID, linkID string) (*entities.Link, error) {
	assessment, err := s.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	id, err := valueobjects.NewLinkIDFromString(linkID)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("link")
	}
	link := assessment.LinkByID(id)
	if link == nil {
		return nil, pkgerrors.NewNotFoundError("link")
	}
	return link, nil
}

// UpdateNodeInput carries edited node fields.
type UpdateNodeInput struct {
	Title     string
	ShortName string
	Tooltip   string
}

// UpdateNode applies an edit to a node and persists the assessment.
func (s *AssessmentService) UpdateNode(ctx context.Context, assessmentID, nodeID string, in UpdateNodeInput) (*entities.Node, error) {
	assessment, err := s.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	id, err := valueobjects.NewNodeIDFromString(nodeID)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("node")
	}
	node := assessment.NodeByID(id)
	if node == nil {
		return nil, pkgerrors.NewNotFoundError("node")
	}
	if err := node.Update(in.Title, in.ShortName, in.Tooltip); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info("node updated",
		zap.String("assessmentID", assessmentID),
		zap.String("nodeID", nodeID),
	)
	return node, nil
}

// UpdateLinkInput carries edited link fields.
type UpdateLinkInput struct {
	Weight    float64
	Rationale string
}

// UpdateLink applies an edit to a link and persists the assessment.
func (s *AssessmentService) UpdateLink(ctx context.Context, assessmentID, linkID string, in UpdateLinkInput) (*entities.Link, error) {
	assessment, err := s.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	id, err := valueobjects.NewLinkIDFromString(linkID)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("link")
	}
	link := assessment.LinkByID(id)
	if link == nil {
		return nil, pkgerrors.NewNotFoundError("link")
	}
	if err := link.Update(in.Weight, in.Rationale); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info("link updated",
		zap.String("assessmentID", assessmentID),
		zap.String("linkID", linkID),
	)
	return link, nil
}

// CreateAssessment persists a new assessment; used by the seed command.
func (s *AssessmentService) CreateAssessment(ctx context.Context, assessment *entities.Assessment) error {
	return s.repo.Save(ctx, assessment)
}
