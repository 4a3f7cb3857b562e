package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"benefitflow/application/services"
	"benefitflow/domain/core/entities"
	"benefitflow/domain/identifier"
	"benefitflow/infrastructure/config"
	"benefitflow/infrastructure/persistence/memory"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/interfaces/http/web/templates"
)

type testEnv struct {
	handler    http.Handler
	repo       *memory.AssessmentRepository
	assessment *entities.Assessment
	node       *entities.Node
	isolated   *entities.Node
	link       *entities.Link
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Environment: "test",
		DummyNodeID: identifier.DefaultDummyNodeID,
	}
	repo := memory.NewAssessmentRepository()
	codec := identifier.NewCodec(cfg.DummyNodeID)
	service := services.NewAssessmentService(repo, codec, zap.NewNop())
	registry := routes.NewRegistry()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	a, err := entities.NewAssessment("Arctic observing benefit assessment")
	require.NoError(t, err)

	obs, err := entities.NewNode("Ice-tethered buoy network", "Buoys", entities.NodeTypeObservingSystem)
	require.NoError(t, err)
	app, err := entities.NewNode("Shipping route planning", "Shipping", entities.NodeTypeApplication)
	require.NoError(t, err)
	solo, err := entities.NewNode("Unconnected system", "", entities.NodeTypeObservingSystem)
	require.NoError(t, err)
	a.AddNode(obs)
	a.AddNode(app)
	a.AddNode(solo)

	l, err := entities.NewLink(obs.ID(), app.ID(), 4)
	require.NoError(t, err)
	require.NoError(t, a.AddLink(l))
	require.NoError(t, repo.Save(context.Background(), a))

	router := NewRouter(cfg, service, registry, renderer, zap.NewNop())
	return &testEnv{
		handler:    router.Setup(),
		repo:       repo,
		assessment: a,
		node:       obs,
		isolated:   solo,
		link:       l,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) clickPoint(t *testing.T, pointJSON string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodPost,
		"/assessments/"+e.assessment.ID().String()+"/chart/click",
		url.Values{"point": {pointJSON}},
	)
}

func TestAssessmentPageRendersChart(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/assessments/"+env.assessment.ID().String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Highcharts.chart")
	assert.Contains(t, body, "Arctic observing benefit assessment")
	assert.Contains(t, body, `id="editModal"`)
	assert.NotContains(t, body, "no data to display")

	// The isolated node is tied to the sentinel so it still renders.
	assert.Contains(t, body, `"node_`+env.isolated.ID().String()+`","dummy",0`)
}

func TestAssessmentPageRenderGateEmpty(t *testing.T) {
	env := setupEnv(t)

	empty, err := entities.NewAssessment("Blank assessment")
	require.NoError(t, err)
	require.NoError(t, env.repo.Save(context.Background(), empty))

	w := env.do(t, http.MethodGet, "/assessments/"+empty.ID().String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "no data to display")
	assert.NotContains(t, body, "Highcharts.chart", "chart must never be instantiated for an empty series")
}

func TestAssessmentPageNotFound(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/assessments/8a8c4a24-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChartClickNodeOpensModal(t *testing.T) {
	env := setupEnv(t)

	w := env.clickPoint(t, `{"id":"node_`+env.node.ID().String()+`","type":"observing_system"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("HX-Trigger"), "modal:opened")

	editURL := "/assessments/" + env.assessment.ID().String() + "/nodes/" + env.node.ID().String() + "/edit"
	assert.Contains(t, w.Body.String(), `hx-get="`+editURL+`"`)
}

func TestChartClickLinkOpensModal(t *testing.T) {
	env := setupEnv(t)

	w := env.clickPoint(t, `{"id":"`+env.link.ID().String()+`","from":"node_a","to":"node_b","weight":4}`)

	require.Equal(t, http.StatusOK, w.Code)
	editURL := "/assessments/" + env.assessment.ID().String() + "/links/" + env.link.ID().String() + "/edit"
	assert.Contains(t, w.Body.String(), `hx-get="`+editURL+`"`)
}

func TestChartClickDummyIsIgnored(t *testing.T) {
	env := setupEnv(t)

	w := env.clickPoint(t, `{"id":"dummy","type":""}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("HX-Trigger"))
}

func TestChartClickLinkFromDummyIsIgnored(t *testing.T) {
	env := setupEnv(t)

	w := env.clickPoint(t, `{"id":"L1","from":"dummy","to":"node_x","weight":0}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestChartClickIsolatedNodePlaceholderRowIsIgnored(t *testing.T) {
	env := setupEnv(t)

	// The exact row the series builder emits for an unconnected node:
	// sentinel target, zero weight, no link id.
	w := env.clickPoint(t, `{"from":"node_`+env.isolated.ID().String()+`","to":"dummy","weight":0}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("HX-Trigger"))
}

func TestChartClickAcceptsJSONBody(t *testing.T) {
	env := setupEnv(t)

	body := `{"id":"node_` + env.node.ID().String() + `","type":"observing_system"}`
	req := httptest.NewRequest(http.MethodPost,
		"/assessments/"+env.assessment.ID().String()+"/chart/click",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChartClickMalformedPoint(t *testing.T) {
	env := setupEnv(t)

	w := env.clickPoint(t, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNodeEditFormFragment(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/nodes/" + env.node.ID().String() + "/edit"
	w := env.do(t, http.MethodGet, path, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Ice-tethered buoy network")
	assert.Contains(t, body, `hx-put="/assessments/`+env.assessment.ID().String()+`/nodes/`+env.node.ID().String()+`"`)
}

func TestNodeEditFormUnknownNode(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/nodes/not-a-uuid/edit"
	w := env.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLinkEditFormFragment(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/links/" + env.link.ID().String() + "/edit"
	w := env.do(t, http.MethodGet, path, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Buoys")
	assert.Contains(t, body, "Shipping")
	assert.Contains(t, body, `name="weight"`)
}

func TestUpdateNode(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/nodes/" + env.node.ID().String()
	w := env.do(t, http.MethodPut, path, url.Values{
		"title":      {"Renamed buoy network"},
		"short_name": {"Buoys"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("HX-Trigger"), "chart:refresh")
	assert.Contains(t, w.Body.String(), "Renamed buoy network")

	stored, err := env.repo.GetByID(context.Background(), env.assessment.ID())
	require.NoError(t, err)
	assert.Equal(t, "Renamed buoy network", stored.NodeByID(env.node.ID()).Title())
}

func TestUpdateNodeRejectsEmptyTitle(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/nodes/" + env.node.ID().String()
	w := env.do(t, http.MethodPut, path, url.Values{"title": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLink(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/links/" + env.link.ID().String()
	w := env.do(t, http.MethodPut, path, url.Values{
		"weight":    {"7.5"},
		"rationale": {"stronger dependency than estimated"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("HX-Trigger"), "chart:refresh")

	stored, err := env.repo.GetByID(context.Background(), env.assessment.ID())
	require.NoError(t, err)
	assert.Equal(t, 7.5, stored.LinkByID(env.link.ID()).Weight())
}

func TestUpdateLinkRejectsNonNumericWeight(t *testing.T) {
	env := setupEnv(t)

	path := "/assessments/" + env.assessment.ID().String() + "/links/" + env.link.ID().String()
	w := env.do(t, http.MethodPut, path, url.Values{"weight": {"heavy"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := setupEnv(t)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/ready", nil).Code)
}
