package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
	pkgerrors "benefitflow/pkg/errors"
)

func TestSaveAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewAssessmentRepository()

	a, err := entities.NewAssessment("Test assessment")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Test assessment", got.Title())
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewAssessmentRepository()

	_, err := repo.GetByID(context.Background(), valueobjects.NewAssessmentID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestSaveRejectsNil(t *testing.T) {
	repo := NewAssessmentRepository()

	err := repo.Save(context.Background(), nil)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestListOrdersByTitle(t *testing.T) {
	ctx := context.Background()
	repo := NewAssessmentRepository()

	b, err := entities.NewAssessment("Beta")
	require.NoError(t, err)
	a, err := entities.NewAssessment("Alpha")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, repo.Save(ctx, a))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title())
	assert.Equal(t, "Beta", all[1].Title())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAssessmentRepository()

	a, err := entities.NewAssessment("Doomed")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, a))

	require.NoError(t, repo.Delete(ctx, a.ID()))

	_, err = repo.GetByID(ctx, a.ID())
	assert.True(t, pkgerrors.IsNotFound(err))

	err = repo.Delete(ctx, a.ID())
	assert.True(t, pkgerrors.IsNotFound(err))
}
