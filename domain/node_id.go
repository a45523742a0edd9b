package domain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"pns-graph/errors"

	"github.com/ethereum/go-ethereum/common"
)

// NodeID is the canonical primary key of a Domain or a Registration:
// "0x" followed by 64 lowercase hex digits.
type NodeID string

const nodeIDWidth = common.HashLength

const (
	RootNodeID   NodeID = "0x3fce7d1364a893e213bc4212792b517ffc88f5b13b86c8ef9c8d390c3a1370ce"
	EmptyAddress        = "0x0000000000000000000000000000000000000000"
)

func (n NodeID) String() string {
	return string(n)
}

func (n NodeID) IsZero() bool {
	return n == ""
}

func (n NodeID) IsRoot() bool {
	return n == RootNodeID
}

// Hash returns the 32 bytes behind the id.
func (n NodeID) Hash() common.Hash {
	return common.HexToHash(string(n))
}

// CanonicalNodeID normalizes a raw token id into a NodeID.
// Accepted inputs are NodeID, common.Hash, [32]byte, []byte, *big.Int, uint64, int and string.
// Integers are rendered as left-zero-padded 32-byte hex, strings are read as hex
// when prefixed with 0x and as decimal otherwise, byte slices are left-padded.
// An input that is already full width comes back unchanged.
func CanonicalNodeID(raw any) (NodeID, error) {
	switch v := raw.(type) {
	case NodeID:
		return CanonicalNodeID(string(v))
	case common.Hash:
		return fromBytes(v.Bytes())
	case [32]byte:
		return fromBytes(v[:])
	case []byte:
		return fromBytes(v)
	case *big.Int:
		return fromBig(v)
	case uint64:
		return fromBig(new(big.Int).SetUint64(v))
	case int:
		if v < 0 {
			return "", fmt.Errorf("%w: negative token id %d", errors.ErrInvalidIdentifier, v)
		}
		return fromBig(big.NewInt(int64(v)))
	case string:
		return fromString(v)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", errors.ErrInvalidIdentifier, raw)
	}
}

// MustNodeID is CanonicalNodeID for constants and tests.
func MustNodeID(raw any) NodeID {
	id, err := CanonicalNodeID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func fromBig(v *big.Int) (NodeID, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil token id", errors.ErrInvalidIdentifier)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%w: negative token id %s", errors.ErrInvalidIdentifier, v)
	}
	if v.BitLen() > nodeIDWidth*8 {
		return "", fmt.Errorf("%w: token id wider than 256 bits", errors.ErrInvalidIdentifier)
	}
	return NodeID(fmt.Sprintf("0x%064x", v)), nil
}

func fromBytes(b []byte) (NodeID, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("%w: empty byte identifier", errors.ErrInvalidIdentifier)
	}
	if len(b) > nodeIDWidth {
		return "", fmt.Errorf("%w: %d bytes exceeds node width", errors.ErrInvalidIdentifier, len(b))
	}
	return NodeID("0x" + hex.EncodeToString(common.LeftPadBytes(b, nodeIDWidth))), nil
}

func fromString(s string) (NodeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty identifier", errors.ErrInvalidIdentifier)
	}
	if !has0xPrefix(s) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return "", fmt.Errorf("%w: %q is not a decimal integer", errors.ErrInvalidIdentifier, s)
		}
		return fromBig(v)
	}
	digits := s[2:]
	if digits == "" {
		return "", fmt.Errorf("%w: bare 0x prefix", errors.ErrInvalidIdentifier)
	}
	if len(digits) > nodeIDWidth*2 {
		return "", fmt.Errorf("%w: %q exceeds node width", errors.ErrInvalidIdentifier, s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", errors.ErrInvalidIdentifier, s, err)
	}
	return fromBytes(b)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// NormalizeAddress renders an account address as lowercase hex so that the same
// account always maps to the same key, whatever checksum casing it arrived with.
func NormalizeAddress(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
