package chart

import (
	"encoding/json"
	"fmt"
)

// PointKind discriminates the two shapes a chart point can take.
type PointKind string

const (
	KindNode PointKind = "node"
	KindLink PointKind = "link"
)

// Point is the datum the charting library hands to the click handler,
// converted to a tagged variant at the decode boundary so nothing
// downstream has to duck-type on field presence.
type Point struct {
	Kind PointKind

	// ID is the display id: "<prefix>_<domainID>" for nodes, the domain
	// id itself for links.
	ID string

	// NodeType is the node's category; only meaningful for KindNode.
	NodeType string

	// From, To and Weight are only meaningful for KindLink.
	From   string
	To     string
	Weight float64
}

// rawPoint mirrors the wire shape the charting library emits. The two point
// shapes share one object; a node is recognised by the presence of the
// "type" field, regardless of its value.
type rawPoint struct {
	ID     string  `json:"id"`
	Type   *string `json:"type"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// DecodePoint parses a clicked chart point from its wire form and
// classifies it.
func DecodePoint(data []byte) (Point, error) {
	var raw rawPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return Point{}, fmt.Errorf("decoding chart point: %w", err)
	}
	return classify(raw), nil
}

// classify applies the structural discriminator: a point with a "type"
// field is a node, anything else is a link.
func classify(raw rawPoint) Point {
	if raw.Type != nil {
		return Point{
			Kind:     KindNode,
			ID:       raw.ID,
			NodeType: *raw.Type,
		}
	}
	return Point{
		Kind:   KindLink,
		ID:     raw.ID,
		From:   raw.From,
		To:     raw.To,
		Weight: raw.Weight,
	}
}
