package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
	pkgerrors "benefitflow/pkg/errors"
)

func openTestRepo(t *testing.T) *AssessmentRepository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedAssessment(t *testing.T) (*entities.Assessment, *entities.Node, *entities.Link) {
	t.Helper()

	a, err := entities.NewAssessment("Persisted assessment")
	require.NoError(t, err)
	n1, err := entities.NewNode("Glacier survey", "Glaciers", entities.NodeTypeObservingSystem)
	require.NoError(t, err)
	n2, err := entities.NewNode("Runoff model", "", entities.NodeTypeDataProduct)
	require.NoError(t, err)
	a.AddNode(n1)
	a.AddNode(n2)

	l, err := entities.NewLink(n1.ID(), n2.ID(), 3)
	require.NoError(t, err)
	require.NoError(t, a.AddLink(l))
	return a, n1, l
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	a, n, l := seedAssessment(t)

	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)

	assert.Equal(t, a.Title(), got.Title())
	require.Len(t, got.Nodes(), 2)
	require.Len(t, got.Links(), 1)

	gotNode := got.NodeByID(n.ID())
	require.NotNil(t, gotNode)
	assert.Equal(t, "Glacier survey", gotNode.Title())
	assert.Equal(t, "Glaciers", gotNode.ShortName())
	assert.Equal(t, entities.NodeTypeObservingSystem, gotNode.Type())

	gotLink := got.LinkByID(l.ID())
	require.NotNil(t, gotLink)
	assert.Equal(t, 3.0, gotLink.Weight())
	assert.True(t, gotLink.Source().Equals(n.ID()))
}

func TestSaveReplacesGraph(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	a, n, _ := seedAssessment(t)
	require.NoError(t, repo.Save(ctx, a))

	node := a.NodeByID(n.ID())
	require.NoError(t, node.Update("Glacier survey v2", "Glaciers", ""))
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.Len(t, got.Nodes(), 2, "re-save must not duplicate the graph")
	assert.Equal(t, "Glacier survey v2", got.NodeByID(n.ID()).Title())
}

func TestGetByIDNotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetByID(context.Background(), valueobjects.NewAssessmentID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	a, _, _ := seedAssessment(t)
	require.NoError(t, repo.Save(ctx, a))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, a.ID()))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Delete(ctx, a.ID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDeleteCascadesGraphRows(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	a, _, _ := seedAssessment(t)
	require.NoError(t, repo.Save(ctx, a))

	require.NoError(t, repo.Delete(ctx, a.ID()))

	var nodes, links int
	require.NoError(t, repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM node WHERE assessment_id = ?`, a.ID().String()).Scan(&nodes))
	require.NoError(t, repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM link WHERE assessment_id = ?`, a.ID().String()).Scan(&links))
	assert.Zero(t, nodes, "node rows must cascade with the assessment")
	assert.Zero(t, links, "link rows must cascade with the assessment")
}
