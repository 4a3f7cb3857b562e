package chart

import (
	"encoding/json"
	"fmt"
	"html"

	"benefitflow/domain/core/entities"
	"benefitflow/domain/identifier"
)

// NodeDisplayPrefix is joined with a node's domain id to form the display
// id the charting library sees.
const NodeDisplayPrefix = "node"

// Flow is one weighted connection in the series. It marshals as the
// positional row the charting library consumes: [from, to, weight] for
// placeholder rows, [from, to, weight, id] when the link is editable.
type Flow struct {
	From   string
	To     string
	Weight float64
	LinkID string
}

// MarshalJSON emits the positional row form.
func (f Flow) MarshalJSON() ([]byte, error) {
	if f.LinkID == "" {
		return json.Marshal([]interface{}{f.From, f.To, f.Weight})
	}
	return json.Marshal([]interface{}{f.From, f.To, f.Weight, f.LinkID})
}

// NodeDescriptor carries a node's display metadata into the chart config.
type NodeDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	TooltipHTML string `json:"tooltipHTML,omitempty"`
}

// SankeySeries is the pre-built input for the chart: ordered flow rows plus
// node descriptors. Consumers treat it as opaque except for the emptiness
// check.
type SankeySeries struct {
	Data  []Flow           `json:"data"`
	Nodes []NodeDescriptor `json:"nodes"`
}

// IsEmpty reports whether there is anything to draw.
func (s SankeySeries) IsEmpty() bool {
	return len(s.Data) == 0
}

// BuildSeries flattens an assessment graph into the chart series.
//
// Nodes without any links are tied to the dummy sentinel with zero weight
// so they still render; the sentinel row carries no link id and is never
// editable. An assessment with no nodes yields an empty series, which the
// render gate turns into a placeholder message instead of a chart.
func BuildSeries(a *entities.Assessment, codec identifier.Codec) SankeySeries {
	var series SankeySeries

	displayID := func(n *entities.Node) string {
		return codec.NodeDisplayID(NodeDisplayPrefix, n.ID().String())
	}

	for _, l := range a.Links() {
		src := a.NodeByID(l.Source())
		dst := a.NodeByID(l.Target())
		if src == nil || dst == nil {
			continue
		}
		series.Data = append(series.Data, Flow{
			From:   displayID(src),
			To:     displayID(dst),
			Weight: l.Weight(),
			LinkID: codec.LinkDomainID(l.ID().String()),
		})
	}

	needsDummy := false
	for _, n := range a.Nodes() {
		if len(a.LinksTouching(n.ID())) == 0 {
			series.Data = append(series.Data, Flow{
				From:   displayID(n),
				To:     codec.DummyNodeID(),
				Weight: 0,
			})
			needsDummy = true
		}
		series.Nodes = append(series.Nodes, NodeDescriptor{
			ID:          displayID(n),
			Name:        n.DisplayName(),
			Type:        string(n.Type()),
			TooltipHTML: nodeTooltipHTML(n),
		})
	}

	if needsDummy {
		series.Nodes = append(series.Nodes, NodeDescriptor{
			ID:   codec.DummyNodeID(),
			Name: "",
		})
	}

	return series
}

// nodeTooltipHTML renders the rich hover content for a node, or empty when
// there is nothing beyond the name (which suppresses the tooltip).
func nodeTooltipHTML(n *entities.Node) string {
	if n.Tooltip() != "" {
		return n.Tooltip()
	}
	if n.Title() == n.DisplayName() {
		return ""
	}
	return fmt.Sprintf("<strong>%s</strong>", html.EscapeString(n.Title()))
}
