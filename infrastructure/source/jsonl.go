// Package source reads decoded chain events from outside the process.
package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"pns-graph/domain/event"
	"pns-graph/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

const maxLineSize = 4 * 1024 * 1024

// JSONLSource yields one event per line of a JSON-lines stream:
//
//	{"type":"Transfer","block":{"number":"12","logIndex":"3",...},"params":{...}}
//
// Quantities are decimal or 0x-prefixed hex strings. Blank lines are ignored.
type JSONLSource struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
	log     *slog.Logger
}

func NewJSONLSource(name string, r io.Reader, log *slog.Logger) *JSONLSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	s := &JSONLSource{name: name, scanner: scanner, log: log}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// OpenJSONL opens the event file at path.
func OpenJSONL(name, path string, log *slog.Logger) (*JSONLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events file %s: %w", path, err)
	}
	return NewJSONLSource(name, f, log), nil
}

func (s *JSONLSource) Name() string {
	return s.name
}

// Next returns the following event, or io.EOF once the stream is drained.
func (s *JSONLSource) Next(ctx context.Context) (event.ChainEvent, error) {
	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.line++
		raw := strings.TrimSpace(s.scanner.Text())
		if raw == "" {
			continue
		}
		e, err := Decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.name, s.line, err)
		}
		return e, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	s.log.Debug("Event source drained", "source", s.name, "lines", s.line)
	return nil, io.EOF
}

func (s *JSONLSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

type envelope struct {
	Type   event.Type      `json:"type"`
	Block  blockJSON       `json:"block"`
	Params json.RawMessage `json:"params"`
}

type blockJSON struct {
	Number    math.HexOrDecimal64 `json:"number"`
	Timestamp math.HexOrDecimal64 `json:"timestamp"`
	TxHash    common.Hash         `json:"txHash"`
	TxFrom    common.Address      `json:"txFrom"`
	TxIndex   math.HexOrDecimal64 `json:"txIndex"`
	LogIndex  math.HexOrDecimal64 `json:"logIndex"`
	Call      bool                `json:"call"`
}

func (b blockJSON) toBlock() event.Block {
	return event.Block{
		Number:    uint64(b.Number),
		Timestamp: uint64(b.Timestamp),
		TxHash:    b.TxHash,
		TxFrom:    b.TxFrom,
		TxIndex:   uint64(b.TxIndex),
		LogIndex:  uint64(b.LogIndex),
		Call:      b.Call,
	}
}

type quantity = *math.HexOrDecimal256

func toBig(q quantity) *big.Int {
	if q == nil {
		return nil
	}
	return (*big.Int)(q)
}

func toBigs(qs []quantity) []*big.Int {
	out := make([]*big.Int, len(qs))
	for i, q := range qs {
		out[i] = toBig(q)
	}
	return out
}

type decoder func(b event.Block, params json.RawMessage) (event.ChainEvent, error)

var decoders = map[event.Type]decoder{
	event.TransferType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			From    common.Address `json:"from"`
			To      common.Address `json:"to"`
			TokenID quantity       `json:"tokenId"`
		}
		err := json.Unmarshal(params, &p)
		return event.Transfer{Block: b, From: p.From, To: p.To, TokenID: toBig(p.TokenID)}, err
	},
	event.NewSubdomainType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			ParentTokenID quantity       `json:"parentTokenId"`
			SubTokenID    quantity       `json:"subTokenId"`
			To            common.Address `json:"to"`
			Name          string         `json:"name"`
		}
		err := json.Unmarshal(params, &p)
		return event.NewSubdomain{
			Block:         b,
			ParentTokenID: toBig(p.ParentTokenID),
			SubTokenID:    toBig(p.SubTokenID),
			To:            p.To,
			Name:          p.Name,
		}, err
	},
	event.NewResolverType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Resolver common.Address `json:"resolver"`
			TokenID  quantity       `json:"tokenId"`
		}
		err := json.Unmarshal(params, &p)
		return event.NewResolver{Block: b, Resolver: p.Resolver, TokenID: toBig(p.TokenID)}, err
	},
	event.ApprovalType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Owner    common.Address `json:"owner"`
			Approved common.Address `json:"approved"`
			TokenID  quantity       `json:"tokenId"`
		}
		err := json.Unmarshal(params, &p)
		return event.Approval{Block: b, Owner: p.Owner, Approved: p.Approved, TokenID: toBig(p.TokenID)}, err
	},
	event.ApprovalForAllType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Owner    common.Address `json:"owner"`
			Operator common.Address `json:"operator"`
			Approved bool           `json:"approved"`
		}
		err := json.Unmarshal(params, &p)
		return event.ApprovalForAll{Block: b, Owner: p.Owner, Operator: p.Operator, Approved: p.Approved}, err
	},
	event.SetType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			TokenID quantity `json:"tokenId"`
			KeyHash quantity `json:"keyHash"`
			Value   string   `json:"value"`
		}
		err := json.Unmarshal(params, &p)
		return event.Set{Block: b, TokenID: toBig(p.TokenID), KeyHash: toBig(p.KeyHash), Value: p.Value}, err
	},
	event.SetLinkType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			TokenID quantity `json:"tokenId"`
			KeyHash quantity `json:"keyHash"`
			Value   quantity `json:"value"`
		}
		err := json.Unmarshal(params, &p)
		return event.SetLink{Block: b, TokenID: toBig(p.TokenID), KeyHash: toBig(p.KeyHash), Value: toBig(p.Value)}, err
	},
	event.SetNameType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Addr    common.Address `json:"addr"`
			TokenID quantity       `json:"tokenId"`
		}
		err := json.Unmarshal(params, &p)
		return event.SetName{Block: b, Addr: p.Addr, TokenID: toBig(p.TokenID)}, err
	},
	event.SetNftNameType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			TokenID    quantity       `json:"tokenId"`
			NftAddr    common.Address `json:"nftAddr"`
			NftTokenID quantity       `json:"nftTokenId"`
		}
		err := json.Unmarshal(params, &p)
		return event.SetNftName{Block: b, TokenID: toBig(p.TokenID), NftAddr: p.NftAddr, NftTokenID: toBig(p.NftTokenID)}, err
	},
	event.NameRegisteredType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Node    quantity            `json:"node"`
			Name    *string             `json:"name"`
			To      common.Address      `json:"to"`
			Cost    quantity            `json:"cost"`
			Expires math.HexOrDecimal64 `json:"expires"`
		}
		err := json.Unmarshal(params, &p)
		return event.NameRegistered{
			Block:   b,
			Node:    toBig(p.Node),
			Name:    p.Name,
			To:      p.To,
			Cost:    toBig(p.Cost),
			Expires: uint64(p.Expires),
		}, err
	},
	event.NameRenewedType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			Node    quantity            `json:"node"`
			Cost    quantity            `json:"cost"`
			Expires math.HexOrDecimal64 `json:"expires"`
		}
		err := json.Unmarshal(params, &p)
		return event.NameRenewed{Block: b, Node: toBig(p.Node), Cost: toBig(p.Cost), Expires: uint64(p.Expires)}, err
	},
	event.CapacityUpdatedType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			TokenID  quantity            `json:"tokenId"`
			Capacity math.HexOrDecimal64 `json:"capacity"`
		}
		err := json.Unmarshal(params, &p)
		return event.CapacityUpdated{Block: b, TokenID: toBig(p.TokenID), Capacity: uint64(p.Capacity)}, err
	},
	event.PriceChangedType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			BasePrices []quantity `json:"basePrices"`
			RentPrices []quantity `json:"rentPrices"`
		}
		err := json.Unmarshal(params, &p)
		return event.PriceChanged{Block: b, BasePrices: toBigs(p.BasePrices), RentPrices: toBigs(p.RentPrices)}, err
	},
	event.SetMetadataBatchType: func(b event.Block, params json.RawMessage) (event.ChainEvent, error) {
		var p struct {
			TokenIDs []quantity `json:"tokenIds"`
			Records  []struct {
				Children math.HexOrDecimal64 `json:"children"`
				Expire   math.HexOrDecimal64 `json:"expire"`
				Capacity math.HexOrDecimal64 `json:"capacity"`
				Origin   quantity            `json:"origin"`
			} `json:"records"`
		}
		err := json.Unmarshal(params, &p)
		records := make([]event.MetadataRecord, len(p.Records))
		for i, r := range p.Records {
			records[i] = event.MetadataRecord{
				Children: uint64(r.Children),
				Expire:   uint64(r.Expire),
				Capacity: uint64(r.Capacity),
				Origin:   toBig(r.Origin),
			}
		}
		return event.SetMetadataBatch{Block: b, TokenIDs: toBigs(p.TokenIDs), Records: records}, err
	},
}

// Decode parses one JSON envelope into its typed event.
func Decode(data []byte) (event.ChainEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	decode, ok := decoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEvent, env.Type)
	}
	params := env.Params
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	e, err := decode(env.Block.toBlock(), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s params: %v", errors.ErrInvalidPayload, env.Type, err)
	}
	return e, nil
}
