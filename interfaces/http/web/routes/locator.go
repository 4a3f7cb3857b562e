package routes

import (
	"benefitflow/domain/chart"
	"benefitflow/domain/identifier"
)

// EditLocator is a resolved edit-form target: a symbolic route plus the
// path params it needs.
type EditLocator struct {
	RouteName  string
	PathParams map[string]string
}

// BuildLocator resolves which edit form a clicked chart point refers to.
//
// Node points carry a composite display id; the domain id is its last
// underscore-separated segment. Link points carry the domain id directly.
// No validation happens here; unresolvable ids are rejected by the server
// when the form is requested.
func BuildLocator(p chart.Point, assessmentID string, codec identifier.Codec) EditLocator {
	if p.Kind == chart.KindNode {
		return EditLocator{
			RouteName: RouteNodeEdit,
			PathParams: map[string]string{
				"assessment_id": assessmentID,
				"node_id":       codec.NodeDomainID(p.ID),
			},
		}
	}
	return EditLocator{
		RouteName: RouteLinkEdit,
		PathParams: map[string]string{
			"assessment_id": assessmentID,
			"link_id":       codec.LinkDomainID(p.ID),
		},
	}
}

// Resolve turns the locator into a concrete URL via the registry.
func (l EditLocator) Resolve(registry *Registry) (string, error) {
	return registry.Reverse(l.RouteName, l.PathParams)
}
