package memory

import (
	"context"
	"sort"
	"sync"

	"benefitflow/application/ports"
	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
	pkgerrors "benefitflow/pkg/errors"
)

// AssessmentRepository is an in-memory implementation of the assessment
// port, used for tests and development.
type AssessmentRepository struct {
	mu          sync.RWMutex
	assessments map[string]*entities.Assessment
}

var _ ports.AssessmentRepository = (*AssessmentRepository)(nil)

// NewAssessmentRepository creates an empty in-memory repository.
func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{
		assessments: make(map[string]*entities.Assessment),
	}
}

// Save persists an assessment (create or update).
func (r *AssessmentRepository) Save(_ context.Context, assessment *entities.Assessment) error {
	if assessment == nil || assessment.ID().IsZero() {
		return pkgerrors.NewValidationError("assessment must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[assessment.ID().String()] = assessment
	return nil
}

// GetByID retrieves an assessment with its full graph.
func (r *AssessmentRepository) GetByID(_ context.Context, id valueobjects.AssessmentID) (*entities.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, ok := r.assessments[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("assessment")
	}
	return assessment, nil
}

// List retrieves all assessments ordered by title.
func (r *AssessmentRepository) List(_ context.Context) ([]*entities.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title() < out[j].Title() })
	return out, nil
}

// Delete removes an assessment.
func (r *AssessmentRepository) Delete(_ context.Context, id valueobjects.AssessmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assessments[id.String()]; !ok {
		return pkgerrors.NewNotFoundError("assessment")
	}
	delete(r.assessments, id.String())
	return nil
}
