package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"benefitflow/domain/core/entities"
	"benefitflow/domain/identifier"
	"benefitflow/infrastructure/persistence/memory"
	pkgerrors "benefitflow/pkg/errors"
)

func setupService(t *testing.T) (*AssessmentService, *entities.Assessment, *entities.Node, *entities.Link) {
	t.Helper()

	repo := memory.NewAssessmentRepository()
	service := NewAssessmentService(repo, identifier.NewCodec(""), zap.NewNop())

	a, err := entities.NewAssessment("Service test assessment")
	require.NoError(t, err)
	n1, err := entities.NewNode("Radar network", "Radar", entities.NodeTypeObservingSystem)
	require.NoError(t, err)
	n2, err := entities.NewNode("Storm warnings", "", entities.NodeTypeApplication)
	require.NoError(t, err)
	a.AddNode(n1)
	a.AddNode(n2)

	l, err := entities.NewLink(n1.ID(), n2.ID(), 2)
	require.NoError(t, err)
	require.NoError(t, a.AddLink(l))
	require.NoError(t, repo.Save(context.Background(), a))

	return service, a, n1, l
}

func TestChartSeries(t *testing.T) {
	service, a, _, _ := setupService(t)

	assessment, series, err := service.ChartSeries(context.Background(), a.ID().String())
	require.NoError(t, err)
	assert.Equal(t, a.ID(), assessment.ID())
	assert.False(t, series.IsEmpty())
	assert.Len(t, series.Nodes, 2)
}

func TestGetAssessmentRejectsMalformedID(t *testing.T) {
	service, _, _, _ := setupService(t)

	_, err := service.GetAssessment(context.Background(), "not-a-uuid")
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUpdateNodePersists(t *testing.T) {
	service, a, n, _ := setupService(t)
	ctx := context.Background()

	updated, err := service.UpdateNode(ctx, a.ID().String(), n.ID().String(), UpdateNodeInput{
		Title:     "Coastal radar network",
		ShortName: "Radar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Coastal radar network", updated.Title())

	reloaded, err := service.GetNode(ctx, a.ID().String(), n.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "Coastal radar network", reloaded.Title())
}

func TestUpdateNodeRejectsEmptyTitle(t *testing.T) {
	service, a, n, _ := setupService(t)

	_, err := service.UpdateNode(context.Background(), a.ID().String(), n.ID().String(), UpdateNodeInput{})
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestUpdateLinkPersists(t *testing.T) {
	service, a, _, l := setupService(t)
	ctx := context.Background()

	updated, err := service.UpdateLink(ctx, a.ID().String(), l.ID().String(), UpdateLinkInput{
		Weight:    6,
		Rationale: "revised after workshop",
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, updated.Weight())

	reloaded, err := service.GetLink(ctx, a.ID().String(), l.ID().String())
	require.NoError(t, err)
	assert.Equal(t, 6.0, reloaded.Weight())
	assert.Equal(t, "revised after workshop", reloaded.Rationale())
}

func TestGetLinkUnknownID(t *testing.T) {
	service, a, _, _ := setupService(t)

	_, err := service.GetLink(context.Background(), a.ID().String(), "not-a-uuid")
	assert.True(t, pkgerrors.IsNotFound(err))
}
