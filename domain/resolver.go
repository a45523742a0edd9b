package domain

import "strings"

const resolverIDSeparator = "-"

// Resolver binds a resolver contract address to a node.
// Addr is the resolved target address, written out-of-band.
type Resolver struct {
	ID      string
	Domain  NodeID
	Address string
	Addr    string
}

// ResolverID is "<resolverAddress>-<nodeId>".
func ResolverID(address string, node NodeID) string {
	return address + resolverIDSeparator + node.String()
}

// ResolverAddress extracts the address component of a composite resolver id.
func ResolverAddress(resolverID string) string {
	address, _, _ := strings.Cut(resolverID, resolverIDSeparator)
	return address
}
