package entities

import (
	"time"

	"benefitflow/domain/core/valueobjects"
	pkgerrors "benefitflow/pkg/errors"
)

// NodeType categorises a node within the benefit-assessment graph.
type NodeType string

const (
	NodeTypeObservingSystem NodeType = "observing_system"
	NodeTypeDataProduct     NodeType = "data_product"
	NodeTypeApplication     NodeType = "application"
	NodeTypeBenefitArea     NodeType = "societal_benefit_area"
)

// Node is an object in the assessment graph: an observing system, data
// product, application or societal benefit area.
type Node struct {
	id        valueobjects.NodeID
	title     string
	shortName string
	nodeType  NodeType
	tooltip   string
	createdAt time.Time
	updatedAt time.Time
}

// NewNode creates a node with constructor validation.
func NewNode(title, shortName string, nodeType NodeType) (*Node, error) {
	if title == "" {
		return nil, pkgerrors.NewValidationError("node title cannot be empty")
	}
	if nodeType == "" {
		return nil, pkgerrors.NewValidationError("node type cannot be empty")
	}
	now := time.Now()
	return &Node{
		id:        valueobjects.NewNodeID(),
		title:     title,
		shortName: shortName,
		nodeType:  nodeType,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructNode rebuilds a node from repository data with preserved
// timestamps.
func ReconstructNode(
	id valueobjects.NodeID,
	title, shortName string,
	nodeType NodeType,
	tooltip string,
	createdAt, updatedAt time.Time,
) *Node {
	return &Node{
		id:        id,
		title:     title,
		shortName: shortName,
		nodeType:  nodeType,
		tooltip:   tooltip,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (n *Node) ID() valueobjects.NodeID { return n.id }
func (n *Node) Title() string           { return n.title }
func (n *Node) ShortName() string       { return n.shortName }
func (n *Node) Type() NodeType          { return n.nodeType }
func (n *Node) Tooltip() string         { return n.tooltip }
func (n *Node) CreatedAt() time.Time    { return n.createdAt }
func (n *Node) UpdatedAt() time.Time    { return n.updatedAt }

// DisplayName prefers the short name when present.
func (n *Node) DisplayName() string {
	if n.shortName != "" {
		return n.shortName
	}
	return n.title
}

// Update applies edited fields.
func (n *Node) Update(title, shortName, tooltip string) error {
	if title == "" {
		return pkgerrors.NewValidationError("node title cannot be empty")
	}
	n.title = title
	n.shortName = shortName
	n.tooltip = tooltip
	n.updatedAt = time.Now()
	return nil
}

// Link is a weighted, directed connection between two nodes.
type Link struct {
	id        valueobjects.LinkID
	source    valueobjects.NodeID
	target    valueobjects.NodeID
	weight    float64
	rationale string
	createdAt time.Time
	updatedAt time.Time
}

// NewLink creates a link with constructor validation.
func NewLink(source, target valueobjects.NodeID, weight float64) (*Link, error) {
	if source.IsZero() || target.IsZero() {
		return nil, pkgerrors.NewValidationError("link endpoints cannot be empty")
	}
	if source.Equals(target) {
		return nil, pkgerrors.NewValidationError("link cannot connect a node to itself")
	}
	if weight < 0 {
		return nil, pkgerrors.NewValidationError("link weight cannot be negative")
	}
	now := time.Now()
	return &Link{
		id:        valueobjects.NewLinkID(),
		source:    source,
		target:    target,
		weight:    weight,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructLink rebuilds a link from repository data.
func ReconstructLink(
	id valueobjects.LinkID,
	source, target valueobjects.NodeID,
	weight float64,
	rationale string,
	createdAt, updatedAt time.Time,
) *Link {
	return &Link{
		id:        id,
		source:    source,
		target:    target,
		weight:    weight,
		rationale: rationale,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (l *Link) ID() valueobjects.LinkID     { return l.id }
func (l *Link) Source() valueobjects.NodeID { return l.source }
func (l *Link) Target() valueobjects.NodeID { return l.target }
func (l *Link) Weight() float64             { return l.weight }
func (l *Link) Rationale() string           { return l.rationale }
func (l *Link) CreatedAt() time.Time        { return l.createdAt }
func (l *Link) UpdatedAt() time.Time        { return l.updatedAt }

// Update applies edited fields.
func (l *Link) Update(weight float64, rationale string) error {
	if weight < 0 {
		return pkgerrors.NewValidationError("link weight cannot be negative")
	}
	l.weight = weight
	l.rationale = rationale
	l.updatedAt = time.Now()
	return nil
}

// Assessment is the aggregate root: a titled benefit assessment owning a
// graph of nodes and weighted links.
type Assessment struct {
	id        valueobjects.AssessmentID
	title     string
	nodes     []*Node
	links     []*Link
	createdAt time.Time
	updatedAt time.Time
}

// NewAssessment creates an empty assessment.
func NewAssessment(title string) (*Assessment, error) {
	if title == "" {
		return nil, pkgerrors.NewValidationError("assessment title cannot be empty")
	}
	now := time.Now()
	return &Assessment{
		id:        valueobjects.NewAssessmentID(),
		title:     title,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAssessment rebuilds an assessment from repository data.
func ReconstructAssessment(
	id valueobjects.AssessmentID,
	title string,
	nodes []*Node,
	links []*Link,
	createdAt, updatedAt time.Time,
) *Assessment {
	return &Assessment{
		id:        id,
		title:     title,
		nodes:     nodes,
		links:     links,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Assessment) ID() valueobjects.AssessmentID { return a.id }
func (a *Assessment) Title() string                 { return a.title }
func (a *Assessment) Nodes() []*Node                { return a.nodes }
func (a *Assessment) Links() []*Link                { return a.links }
func (a *Assessment) CreatedAt() time.Time          { return a.createdAt }
func (a *Assessment) UpdatedAt() time.Time          { return a.updatedAt }

// AddNode attaches a node to the assessment graph.
func (a *Assessment) AddNode(n *Node) {
	a.nodes = append(a.nodes, n)
	a.updatedAt = time.Now()
}

// AddLink attaches a link; both endpoints must already be in the graph.
func (a *Assessment) AddLink(l *Link) error {
	if a.NodeByID(l.Source()) == nil || a.NodeByID(l.Target()) == nil {
		return pkgerrors.NewValidationError("link endpoints must exist in the assessment")
	}
	a.links = append(a.links, l)
	a.updatedAt = time.Now()
	return nil
}

// NodeByID finds a node in the graph, or nil.
func (a *Assessment) NodeByID(id valueobjects.NodeID) *Node {
	for _, n := range a.nodes {
		if n.ID().Equals(id) {
			return n
		}
	}
	return nil
}

// LinkByID finds a link in the graph, or nil.
func (a *Assessment) LinkByID(id valueobjects.LinkID) *Link {
	for _, l := range a.links {
		if l.ID().Equals(id) {
			return l
		}
	}
	return nil
}

// LinksTouching returns all links with the given node as an endpoint.
func (a *Assessment) LinksTouching(id valueobjects.NodeID) []*Link {
	var out []*Link
	for _, l := range a.links {
		if l.Source().Equals(id) || l.Target().Equals(id) {
			out = append(out, l)
		}
	}
	return out
}
