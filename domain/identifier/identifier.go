package identifier

import "strings"

// DefaultDummyNodeID is the sentinel id the series builder injects so an
// otherwise-empty diagram still renders. Points carrying it are never
// editable.
const DefaultDummyNodeID = "dummy"

// Codec translates between the display identifiers the charting library
// sees and the domain identifiers the server routes on.
//
// Node display ids are "<prefix>_<domainID>"; the domain id is always the
// last underscore-separated segment. Link display ids are the domain id
// itself. The codec trusts the format produced by the series builder and
// performs no validation.
type Codec struct {
	dummy string
}

// NewCodec creates a codec with the given dummy sentinel id. An empty
// sentinel falls back to DefaultDummyNodeID.
func NewCodec(dummyNodeID string) Codec {
	if dummyNodeID == "" {
		dummyNodeID = DefaultDummyNodeID
	}
	return Codec{dummy: dummyNodeID}
}

// DummyNodeID returns the configured sentinel value.
func (c Codec) DummyNodeID() string {
	return c.dummy
}

// IsDummy reports whether id is the reserved placeholder identifier.
func (c Codec) IsDummy(id string) bool {
	return id == c.dummy
}

// NodeDomainID extracts the domain id from a node display id by taking the
// segment after the last underscore. An id without a delimiter is returned
// unchanged.
func (c Codec) NodeDomainID(id string) string {
	if i := strings.LastIndex(id, "_"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// NodeDisplayID is the synthesis direction of NodeDomainID.
func (c Codec) NodeDisplayID(prefix, domainID string) string {
	return prefix + "_" + domainID
}

// LinkDomainID returns the domain id for a link display id. A link's
// display id is its domain id.
func (c Codec) LinkDomainID(id string) string {
	return id
}
