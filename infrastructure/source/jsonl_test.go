package source

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pns-graph/domain/event"
	"pns-graph/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const sample = `
{"type":"NewSubdomain","block":{"number":"100","timestamp":"1700000000","txHash":"0x00000000000000000000000000000000000000000000000000000000000000aa","txFrom":"0x00000000000000000000000000000000000a11ce","logIndex":"0x2"},"params":{"parentTokenId":"0x3fce7d1364a893e213bc4212792b517ffc88f5b13b86c8ef9c8d390c3a1370ce","subTokenId":"42","to":"0x0000000000000000000000000000000000000b0b","name":"alice"}}

{"type":"SetMetadataBatch","block":{"number":"101","txIndex":"7","call":true},"params":{"tokenIds":["1","0x2"],"records":[{"children":"2","expire":"10","capacity":"5","origin":"1"},{"children":"0","expire":"20","capacity":"6","origin":"1"}]}}
{"type":"NameRegistered","block":{"number":"102"},"params":{"node":"5","to":"0x0000000000000000000000000000000000000b0b","cost":"1000","expires":"1800000000"}}
`

func TestJSONLSource_Next(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	src := NewJSONLSource("test", strings.NewReader(sample), logs.GetLoggerFromLevel(slog.LevelDebug))
	defer src.Close()

	first, err := src.Next(ctx)
	req.NoError(err)
	sub, ok := first.(event.NewSubdomain)
	req.True(ok)
	req.Equal(uint64(100), sub.Block.Number)
	req.Equal(uint64(1700000000), sub.Block.Timestamp)
	req.Equal(uint64(2), sub.Block.LogIndex)
	req.Equal(common.HexToAddress("0x00000000000000000000000000000000000a11ce"), sub.Block.TxFrom)
	req.Equal("100-2", sub.Block.EventID())
	req.Equal(0, big.NewInt(42).Cmp(sub.SubTokenID))
	req.Equal("alice", sub.Name)

	second, err := src.Next(ctx)
	req.NoError(err)
	batch, ok := second.(event.SetMetadataBatch)
	req.True(ok)
	req.True(batch.Block.Call)
	req.Equal("101-7-1", batch.Block.ElementID(1))
	req.Len(batch.TokenIDs, 2)
	req.Equal(0, big.NewInt(2).Cmp(batch.TokenIDs[1]))
	req.Equal(uint64(2), batch.Records[0].Children)
	req.Equal(uint64(20), batch.Records[1].Expire)

	third, err := src.Next(ctx)
	req.NoError(err)
	registered, ok := third.(event.NameRegistered)
	req.True(ok)
	req.Nil(registered.Name)
	req.Equal(uint64(1800000000), registered.Expires)

	_, err = src.Next(ctx)
	req.ErrorIs(err, io.EOF)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"not json", `{"type":`, errors.ErrInvalidPayload},
		{"unknown type", `{"type":"Burned","block":{"number":"1"}}`, errors.ErrUnknownEvent},
		{"bad quantity", `{"type":"Transfer","block":{"number":"1"},"params":{"tokenId":"0xzz"}}`, errors.ErrInvalidPayload},
		{"bad address", `{"type":"Transfer","block":{"number":"1"},"params":{"to":"0x12"}}`, errors.ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.line))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpenJSONL(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "events.jsonl")
	req.NoError(os.WriteFile(path, []byte(`{"type":"Approval","block":{"number":"3"},"params":{"tokenId":"9"}}`+"\n"), 0o600))

	src, err := OpenJSONL("file", path, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)
	req.Equal("file", src.Name())

	e, err := src.Next(context.Background())
	req.NoError(err)
	req.Equal(event.ApprovalType, e.Type())
	req.NoError(src.Close())

	_, err = OpenJSONL("missing", filepath.Join(t.TempDir(), "nope.jsonl"), logs.GetLoggerFromLevel(slog.LevelDebug))
	req.Error(err)
}
