package ports

import (
	"context"

	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
)

// AssessmentRepository defines the interface for assessment persistence.
// This is a port - the domain doesn't know about the implementation.
type AssessmentRepository interface {
	// Save persists an assessment and its graph (create or update)
	Save(ctx context.Context, assessment *entities.Assessment) error

	// GetByID retrieves an assessment with its full graph
	GetByID(ctx context.Context, id valueobjects.AssessmentID) (*entities.Assessment, error)

	// List retrieves all assessments, graphs included
	List(ctx context.Context) ([]*entities.Assessment, error)

	// Delete removes an assessment and its graph
	Delete(ctx context.Context, id valueobjects.AssessmentID) error
}
