package domain

import "github.com/samber/lo"

// RootName is the name of the root node and the placeholder suffix for names whose
// parent is not resolved yet.
const RootName = "dot"

// Domain is a node of the naming tree.
// SubdomainCount is maintained incrementally and must match the number of unpruned
// children whose Parent points at this node. Pruned marks a node that became
// ownerless, resolver-less and childless; it is cleared if the node fills up again.
type Domain struct {
	ID              NodeID
	Owner           string
	Parent          NodeID
	LabelName       *string
	Name            *string
	Labelhash       string
	Resolver        string
	ResolvedAddress string
	SubdomainCount  int
	CreatedAt       uint64
	Pruned          bool
}

// NewDefaultDomain is the zero-valued domain used when a node is referenced before
// it was ever stored.
func NewDefaultDomain(id NodeID, timestamp uint64) Domain {
	return Domain{
		ID:             id,
		CreatedAt:      timestamp,
		SubdomainCount: 0,
	}
}

// NewRootDomain is the reserved top of the tree. It is never created by a
// subdomain event, so its defaults are fixed here.
func NewRootDomain() Domain {
	return Domain{
		ID:             RootNodeID,
		Owner:          EmptyAddress,
		Name:           lo.ToPtr(RootName),
		CreatedAt:      0,
		SubdomainCount: 0,
	}
}

// DefaultDomain picks the root defaults for the reserved id and the generic ones otherwise.
func DefaultDomain(id NodeID, timestamp uint64) Domain {
	if id.IsRoot() {
		return NewRootDomain()
	}
	return NewDefaultDomain(id, timestamp)
}

func (d Domain) IsRoot() bool {
	return d.ID.IsRoot()
}

func (d Domain) IsOwnerless() bool {
	return d.Owner == "" || d.Owner == EmptyAddress
}

func (d Domain) HasResolver() bool {
	if d.Resolver == "" {
		return false
	}
	return ResolverAddress(d.Resolver) != EmptyAddress
}

// IsPrunable reports whether the node is empty: no owner, no live resolver, no children.
func (d Domain) IsPrunable() bool {
	return !d.HasResolver() && d.IsOwnerless() && d.SubdomainCount == 0
}

func (d Domain) HasName() bool {
	return d.Name != nil
}
