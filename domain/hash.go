package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Keccak256 is the legacy (pre-NIST) Keccak used on chain.
func Keccak256(data ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	var out common.Hash
	h.Sum(out[:0])
	return out
}

// LabelHash is keccak256(utf8(label)) rendered as lowercase hex.
func LabelHash(label string) string {
	return Keccak256([]byte(label)).Hex()
}

// NameHash derives the node of a dotted name, right-most label first.
// The empty name is the zero node.
func NameHash(name string) NodeID {
	var node common.Hash
	if name == "" {
		return MustNodeID(node)
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = Keccak256(node.Bytes(), Keccak256([]byte(labels[i])).Bytes())
	}
	return MustNodeID(node)
}

// Subnode derives the child node of parent for a given labelhash.
func Subnode(parent NodeID, labelHash common.Hash) NodeID {
	return MustNodeID(Keccak256(parent.Hash().Bytes(), labelHash.Bytes()))
}
