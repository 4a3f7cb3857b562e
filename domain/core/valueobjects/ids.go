package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// AssessmentID identifies a benefit assessment.
type AssessmentID struct {
	value string
}

// NewAssessmentID creates a new random AssessmentID.
func NewAssessmentID() AssessmentID {
	return AssessmentID{value: uuid.New().String()}
}

// NewAssessmentIDFromString creates an AssessmentID from an existing string.
func NewAssessmentIDFromString(id string) (AssessmentID, error) {
	if id == "" {
		return AssessmentID{}, errors.New("assessment ID cannot be empty")
	}
	if !isValidUUID(id) {
		return AssessmentID{}, errors.New("assessment ID must be a valid UUID")
	}
	return AssessmentID{value: id}, nil
}

func (id AssessmentID) String() string { return id.value }

// IsZero checks if the AssessmentID is the zero value.
func (id AssessmentID) IsZero() bool { return id.value == "" }

// Equals checks if two AssessmentIDs are equal.
func (id AssessmentID) Equals(other AssessmentID) bool { return id.value == other.value }

// NodeID identifies a node within an assessment graph.
type NodeID struct {
	value string
}

// NewNodeID creates a new random NodeID.
func NewNodeID() NodeID {
	return NodeID{value: uuid.New().String()}
}

// NewNodeIDFromString creates a NodeID from an existing string.
func NewNodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	if !isValidUUID(id) {
		return NodeID{}, errors.New("node ID must be a valid UUID")
	}
	return NodeID{value: id}, nil
}

func (id NodeID) String() string { return id.value }

// IsZero checks if the NodeID is the zero value.
func (id NodeID) IsZero() bool { return id.value == "" }

// Equals checks if two NodeIDs are equal.
func (id NodeID) Equals(other NodeID) bool { return id.value == other.value }

// LinkID identifies a weighted link between two nodes.
type LinkID struct {
	value string
}

// NewLinkID creates a new random LinkID.
func NewLinkID() LinkID {
	return LinkID{value: uuid.New().String()}
}

// NewLinkIDFromString creates a LinkID from an existing string.
func NewLinkIDFromString(id string) (LinkID, error) {
	if id == "" {
		return LinkID{}, errors.New("link ID cannot be empty")
	}
	if !isValidUUID(id) {
		return LinkID{}, errors.New("link ID must be a valid UUID")
	}
	return LinkID{value: id}, nil
}

func (id LinkID) String() string { return id.value }

// IsZero checks if the LinkID is the zero value.
func (id LinkID) IsZero() bool { return id.value == "" }

// Equals checks if two LinkIDs are equal.
func (id LinkID) Equals(other LinkID) bool { return id.value == other.value }

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
