package routes

import (
	"fmt"

	"github.com/gorilla/mux"
)

// Route names, mirroring the server-side route table so handlers and
// templates resolve URLs symbolically instead of assembling strings.
const (
	RouteAssessmentPage = "assessment.view"
	RouteChartClick     = "assessment.chart_click"
	RouteNodeEdit       = "assessment.edit_node"
	RouteLinkEdit       = "assessment.edit_link"
	RouteNodeUpdate     = "assessment.update_node"
	RouteLinkUpdate     = "assessment.update_link"
)

// Path patterns, shared between the registry and the chi router. Both use
// the {name} placeholder syntax, so one literal serves both.
const (
	PatternAssessmentPage = "/assessments/{assessment_id}"
	PatternChartClick     = "/assessments/{assessment_id}/chart/click"
	PatternNodeEdit       = "/assessments/{assessment_id}/nodes/{node_id}/edit"
	PatternLinkEdit       = "/assessments/{assessment_id}/links/{link_id}/edit"
	PatternNodeUpdate     = "/assessments/{assessment_id}/nodes/{node_id}"
	PatternLinkUpdate     = "/assessments/{assessment_id}/links/{link_id}"
)

// Registry provides route reversal: resolving a route name plus params into
// a concrete URL, equivalent to the server's route definitions.
type Registry struct {
	router *mux.Router
}

// NewRegistry builds the route table.
func NewRegistry() *Registry {
	r := mux.NewRouter()
	r.Path(PatternAssessmentPage).Name(RouteAssessmentPage)
	r.Path(PatternChartClick).Name(RouteChartClick)
	r.Path(PatternNodeEdit).Name(RouteNodeEdit)
	r.Path(PatternLinkEdit).Name(RouteLinkEdit)
	r.Path(PatternNodeUpdate).Name(RouteNodeUpdate)
	r.Path(PatternLinkUpdate).Name(RouteLinkUpdate)
	return &Registry{router: r}
}

// Reverse resolves a route name and path params into a URL string.
func (r *Registry) Reverse(name string, params map[string]string) (string, error) {
	route := r.router.Get(name)
	if route == nil {
		return "", fmt.Errorf("unknown route %q", name)
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, v)
	}

	u, err := route.URL(pairs...)
	if err != nil {
		return "", fmt.Errorf("reversing route %q: %w", name, err)
	}
	return u.String(), nil
}
