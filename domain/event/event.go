package event

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Block carries the ambient chain metadata every decoded event arrives with.
// Call is set for events produced by a call handler, which are keyed by
// transaction index instead of log index.
type Block struct {
	Number    uint64
	Timestamp uint64
	TxHash    common.Hash
	TxFrom    common.Address
	TxIndex   uint64
	LogIndex  uint64
	Call      bool
}

// EventID is the composite key of the audit record produced by this event:
// "<block>-<logIndex>" for logs and "<block>-<txIndex>" for calls.
func (b Block) EventID() string {
	if b.Call {
		return fmt.Sprintf("%d-%d", b.Number, b.TxIndex)
	}
	return fmt.Sprintf("%d-%d", b.Number, b.LogIndex)
}

// Position identifies the event inside its block. Logs and calls are numbered
// independently, so the kind is part of the key.
func (b Block) Position() string {
	if b.Call {
		return fmt.Sprintf("call:%d", b.TxIndex)
	}
	return fmt.Sprintf("log:%d", b.LogIndex)
}

// ElementID keys the i-th element of a batch event.
func (b Block) ElementID(i int) string {
	return fmt.Sprintf("%s-%d", b.EventID(), i)
}

// ChainEvent is any decoded registry event.
type ChainEvent interface {
	Meta() Block
	Type() Type
}

type Type string

const (
	TransferType         Type = "Transfer"
	NewSubdomainType     Type = "NewSubdomain"
	NewResolverType      Type = "NewResolver"
	ApprovalType         Type = "Approval"
	ApprovalForAllType   Type = "ApprovalForAll"
	SetType              Type = "Set"
	SetLinkType          Type = "SetLink"
	SetNameType          Type = "SetName"
	SetNftNameType       Type = "SetNftName"
	NameRegisteredType   Type = "NameRegistered"
	NameRenewedType      Type = "NameRenewed"
	CapacityUpdatedType  Type = "CapacityUpdated"
	PriceChangedType     Type = "PriceChanged"
	SetMetadataBatchType Type = "SetMetadataBatch"
)

type Transfer struct {
	Block   Block
	From    common.Address
	To      common.Address
	TokenID *big.Int
}

func (e Transfer) Meta() Block { return e.Block }
func (e Transfer) Type() Type  { return TransferType }

type NewSubdomain struct {
	Block         Block
	ParentTokenID *big.Int
	SubTokenID    *big.Int
	To            common.Address
	Name          string
}

func (e NewSubdomain) Meta() Block { return e.Block }
func (e NewSubdomain) Type() Type  { return NewSubdomainType }

type NewResolver struct {
	Block    Block
	Resolver common.Address
	TokenID  *big.Int
}

func (e NewResolver) Meta() Block { return e.Block }
func (e NewResolver) Type() Type  { return NewResolverType }

type Approval struct {
	Block    Block
	Owner    common.Address
	Approved common.Address
	TokenID  *big.Int
}

func (e Approval) Meta() Block { return e.Block }
func (e Approval) Type() Type  { return ApprovalType }

type ApprovalForAll struct {
	Block    Block
	Owner    common.Address
	Operator common.Address
	Approved bool
}

func (e ApprovalForAll) Meta() Block { return e.Block }
func (e ApprovalForAll) Type() Type  { return ApprovalForAllType }

type Set struct {
	Block   Block
	TokenID *big.Int
	KeyHash *big.Int
	Value   string
}

func (e Set) Meta() Block { return e.Block }
func (e Set) Type() Type  { return SetType }

type SetLink struct {
	Block   Block
	TokenID *big.Int
	KeyHash *big.Int
	Value   *big.Int
}

func (e SetLink) Meta() Block { return e.Block }
func (e SetLink) Type() Type  { return SetLinkType }

type SetName struct {
	Block   Block
	Addr    common.Address
	TokenID *big.Int
}

func (e SetName) Meta() Block { return e.Block }
func (e SetName) Type() Type  { return SetNameType }

type SetNftName struct {
	Block      Block
	TokenID    *big.Int
	NftAddr    common.Address
	NftTokenID *big.Int
}

func (e SetNftName) Meta() Block { return e.Block }
func (e SetNftName) Type() Type  { return SetNftNameType }

// NameRegistered carries an optional label: older controllers did not emit it.
type NameRegistered struct {
	Block   Block
	Node    *big.Int
	Name    *string
	To      common.Address
	Cost    *big.Int
	Expires uint64
}

func (e NameRegistered) Meta() Block { return e.Block }
func (e NameRegistered) Type() Type  { return NameRegisteredType }

type NameRenewed struct {
	Block   Block
	Node    *big.Int
	Cost    *big.Int
	Expires uint64
}

func (e NameRenewed) Meta() Block { return e.Block }
func (e NameRenewed) Type() Type  { return NameRenewedType }

type CapacityUpdated struct {
	Block    Block
	TokenID  *big.Int
	Capacity uint64
}

func (e CapacityUpdated) Meta() Block { return e.Block }
func (e CapacityUpdated) Type() Type  { return CapacityUpdatedType }

type PriceChanged struct {
	Block      Block
	BasePrices []*big.Int
	RentPrices []*big.Int
}

func (e PriceChanged) Meta() Block { return e.Block }
func (e PriceChanged) Type() Type  { return PriceChangedType }

// MetadataRecord is one element of a SetMetadataBatch call.
type MetadataRecord struct {
	Children uint64
	Expire   uint64
	Capacity uint64
	Origin   *big.Int
}

type SetMetadataBatch struct {
	Block    Block
	TokenIDs []*big.Int
	Records  []MetadataRecord
}

func (e SetMetadataBatch) Meta() Block { return e.Block }
func (e SetMetadataBatch) Type() Type  { return SetMetadataBatchType }
