// Package audit holds the immutable history records, one per handled chain event.
// Records are keyed by the composite id of the event that produced them, so a replayed
// event rewrites the same record instead of adding a new one.
package audit

import (
	"fmt"
	"math/big"

	"pns-graph/domain"
	"pns-graph/domain/event"
)

type Kind string

const (
	NameRegisteredKind       Kind = "NameRegistered"
	NameRenewedKind          Kind = "NameRenewed"
	CapacityUpdatedKind      Kind = "CapacityUpdated"
	PriceChangedKind         Kind = "PriceChanged"
	TransferKind             Kind = "Transfer"
	NewSubdomainKind         Kind = "NewSubdomain"
	NewResolverKind          Kind = "NewResolver"
	ApprovalKind             Kind = "Approval"
	AuthorisationChangedKind Kind = "AuthorisationChanged"
	SetKind                  Kind = "Set"
	SetLinkKind              Kind = "SetLink"
	SetNameKind              Kind = "SetName"
	SetNftNameKind           Kind = "SetNftName"
	InitMetadataRecordKind   Kind = "InitMetadataRecord"
)

var Kinds = []Kind{
	NameRegisteredKind, NameRenewedKind, CapacityUpdatedKind, PriceChangedKind,
	TransferKind, NewSubdomainKind, NewResolverKind, ApprovalKind,
	AuthorisationChangedKind, SetKind, SetLinkKind, SetNameKind, SetNftNameKind,
	InitMetadataRecordKind,
}

type Record interface {
	Kind() Kind
	RecordID() string
}

// Header is the part shared by every record.
type Header struct {
	ID            string
	BlockNumber   uint64
	TransactionID string
	TriggeredDate uint64
}

func (h Header) RecordID() string { return h.ID }

// HeaderOf builds the header of the record produced by a whole event.
func HeaderOf(b event.Block) Header {
	return headerWithID(b, b.EventID())
}

// ElementHeaderOf builds the header of the record produced by the i-th element of a batch.
func ElementHeaderOf(b event.Block, i int) Header {
	return headerWithID(b, b.ElementID(i))
}

func headerWithID(b event.Block, id string) Header {
	return Header{
		ID:            id,
		BlockNumber:   b.Number,
		TransactionID: b.TxHash.Hex(),
		TriggeredDate: b.Timestamp,
	}
}

type NameRegistered struct {
	Header
	Registration domain.NodeID
	Registrant   string
	ExpiryDate   uint64
	Cost         *big.Int
}

func (NameRegistered) Kind() Kind { return NameRegisteredKind }

type NameRenewed struct {
	Header
	Registration domain.NodeID
	Registrant   string
	ExpiryDate   uint64
	Cost         *big.Int
}

func (NameRenewed) Kind() Kind { return NameRenewedKind }

type CapacityUpdated struct {
	Header
	Registration domain.NodeID
	Domain       domain.NodeID
	Registrant   string
	Capacity     uint64
}

func (CapacityUpdated) Kind() Kind { return CapacityUpdatedKind }

type PriceChanged struct {
	Header
	BasePrices []*big.Int
	RentPrices []*big.Int
}

func (PriceChanged) Kind() Kind { return PriceChangedKind }

type Transfer struct {
	Header
	Domain domain.NodeID
	From   string
	To     string
}

func (Transfer) Kind() Kind { return TransferKind }

type NewSubdomain struct {
	Header
	Domain domain.NodeID
	Parent domain.NodeID
	Owner  string
	Label  string
}

func (NewSubdomain) Kind() Kind { return NewSubdomainKind }

type NewResolver struct {
	Header
	Domain   domain.NodeID
	Resolver string
}

func (NewResolver) Kind() Kind { return NewResolverKind }

type Approval struct {
	Header
	Account  string
	Operator string
	Tokens   domain.NodeID
}

func (Approval) Kind() Kind { return ApprovalKind }

type AuthorisationChanged struct {
	Header
	Owner        string
	Target       string
	IsAuthorized bool
}

func (AuthorisationChanged) Kind() Kind { return AuthorisationChangedKind }

type Set struct {
	Header
	Domain  domain.NodeID
	KeyHash *big.Int
	Value   string
}

func (Set) Kind() Kind { return SetKind }

type SetLink struct {
	Header
	Domain  domain.NodeID
	KeyHash *big.Int
	Value   *big.Int
}

func (SetLink) Kind() Kind { return SetLinkKind }

type SetName struct {
	Header
	TokenID domain.NodeID
	Account string
}

func (SetName) Kind() Kind { return SetNameKind }

type SetNftName struct {
	Header
	Domain     domain.NodeID
	NftAddr    string
	NftTokenID *big.Int
}

func (SetNftName) Kind() Kind { return SetNftNameKind }

type InitMetadataRecord struct {
	Header
	Domain       domain.NodeID
	Registration domain.NodeID
	Origin       domain.NodeID
	Children     uint64
	ExpiryDate   uint64
	Capacity     uint64
}

func (InitMetadataRecord) Kind() Kind { return InitMetadataRecordKind }

// New returns an empty record of the given kind, ready to be decoded into.
func New(kind Kind) (Record, error) {
	switch kind {
	case NameRegisteredKind:
		return &NameRegistered{}, nil
	case NameRenewedKind:
		return &NameRenewed{}, nil
	case CapacityUpdatedKind:
		return &CapacityUpdated{}, nil
	case PriceChangedKind:
		return &PriceChanged{}, nil
	case TransferKind:
		return &Transfer{}, nil
	case NewSubdomainKind:
		return &NewSubdomain{}, nil
	case NewResolverKind:
		return &NewResolver{}, nil
	case ApprovalKind:
		return &Approval{}, nil
	case AuthorisationChangedKind:
		return &AuthorisationChanged{}, nil
	case SetKind:
		return &Set{}, nil
	case SetLinkKind:
		return &SetLink{}, nil
	case SetNameKind:
		return &SetName{}, nil
	case SetNftNameKind:
		return &SetNftName{}, nil
	case InitMetadataRecordKind:
		return &InitMetadataRecord{}, nil
	default:
		return nil, fmt.Errorf("unknown audit kind %q", kind)
	}
}
