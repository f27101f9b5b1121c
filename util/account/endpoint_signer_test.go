package account

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/txsubmit/common"
)

const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testParams() common.TxParams {
	return common.TxParams{
		To:       common.AddressParam("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		Value:    common.BigParam(big.NewInt(1)),
		Gas:      common.Uint64Param(21000),
		GasPrice: common.BigParam(big.NewInt(1e9)),
		Nonce:    common.Uint64Param(3),
	}
}

func decodePayload(t *testing.T, payload string) *types.Transaction {
	t.Helper()
	raw, err := hexutil.Decode(payload)
	require.NoError(t, err)
	tx := new(types.Transaction)
	require.NoError(t, tx.UnmarshalBinary(raw))
	return tx
}

func failingResolver(t *testing.T) ChainIDResolver {
	return func(ctx context.Context, nodeEndpoint string) (*big.Int, error) {
		t.Fatalf("chain id lookup not expected, endpoint %s", nodeEndpoint)
		return nil, nil
	}
}

// chainIDNode answers eth_chainId with chainID and counts the calls.
func chainIDNode(t *testing.T, chainID string, calls *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_chainId" {
			w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"` + chainID + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSignUsesChainIDFromParams(t *testing.T) {
	params := testParams()
	params.ChainID = common.Uint64Param(1)

	payload, err := NewEndpointSignerWithResolver(failingResolver(t)).
		Sign(context.Background(), params, testKey, "http://unused")
	require.NoError(t, err)

	tx := decodePayload(t, payload)
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1)), tx)
	require.NoError(t, err)
	assert.Equal(t, ethcommon.HexToAddress(testAddress), sender)
	assert.Equal(t, uint64(3), tx.Nonce())
	assert.Equal(t, int64(1), tx.Value().Int64())
}

func TestSignResolvesChainIDFromNode(t *testing.T) {
	var calls int32
	node := chainIDNode(t, "0x539", &calls)

	payload, err := NewEndpointSigner(node.Client()).
		Sign(context.Background(), testParams(), testKey, node.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	tx := decodePayload(t, payload)
	assert.Equal(t, int64(1337), tx.ChainId().Int64())
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1337)), tx)
	require.NoError(t, err)
	assert.Equal(t, ethcommon.HexToAddress(testAddress), sender)
}

func TestSignDynamicFeeTx(t *testing.T) {
	params := testParams()
	params.GasPrice = nil
	params.MaxFeePerGas = common.BigParam(big.NewInt(2e9))
	params.MaxPriorityFeePerGas = common.BigParam(big.NewInt(1e9))
	params.ChainID = common.Uint64Param(10)

	payload, err := NewEndpointSignerWithResolver(failingResolver(t)).
		Sign(context.Background(), params, testKey[2:], "http://unused")
	require.NoError(t, err)

	tx := decodePayload(t, payload)
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, int64(10), tx.ChainId().Int64())
}

func TestSignFromMustMatchKey(t *testing.T) {
	params := testParams()
	params.ChainID = common.Uint64Param(1)

	params.From = common.AddressParam(testAddress)
	_, err := NewEndpointSignerWithResolver(failingResolver(t)).
		Sign(context.Background(), params, testKey, "http://unused")
	require.NoError(t, err)

	params.From = common.AddressParam("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	_, err = NewEndpointSignerWithResolver(failingResolver(t)).
		Sign(context.Background(), params, testKey, "http://unused")
	var signErr *SigningError
	require.True(t, errors.As(err, &signErr))
	assert.Contains(t, err.Error(), "doesn't match")
}

func TestSignFailures(t *testing.T) {
	resolverErr := errors.New("connection refused")
	brokenResolver := func(ctx context.Context, nodeEndpoint string) (*big.Int, error) {
		return nil, resolverErr
	}
	incomplete := testParams()
	incomplete.Gas = nil

	tests := []struct {
		name    string
		params  common.TxParams
		key     string
		want    string
		wantErr error
	}{
		{name: "garbage key", params: testParams(), key: "0xnot-a-key", want: "invalid private key"},
		{name: "empty key", params: testParams(), key: "", want: "invalid private key"},
		{name: "incomplete params", params: incomplete, key: testKey, want: "gas is required"},
		{name: "chain id lookup", params: testParams(), key: testKey, want: "couldn't get chain id", wantErr: resolverErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := NewEndpointSignerWithResolver(brokenResolver).
				Sign(context.Background(), tt.params, tt.key, "http://node")
			require.Error(t, err)
			assert.Empty(t, payload)

			var signErr *SigningError
			require.True(t, errors.As(err, &signErr))
			assert.Contains(t, err.Error(), "couldn't sign the tx")
			assert.Contains(t, err.Error(), tt.want)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSignNodeReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewEndpointSigner(srv.Client()).
		Sign(context.Background(), testParams(), testKey, srv.URL)
	var signErr *SigningError
	require.True(t, errors.As(err, &signErr))
	assert.Contains(t, err.Error(), "couldn't get chain id from the node")
}
