package domain

// Registration holds the rights attached to a Domain and shares its id.
// Origin points at the Domain the capacity is inherited from, which may differ
// from the graph parent.
type Registration struct {
	ID         NodeID
	Domain     NodeID
	ExpiryDate uint64
	Capacity   uint64
	Origin     NodeID
	LabelName  *string
}

func NewRegistration(id NodeID) Registration {
	return Registration{ID: id, Domain: id}
}
