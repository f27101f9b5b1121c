package broadcaster

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPayload = "0xf86c0a8502540be400825208944bbeeb066ed09b7aed07bf39eee0460dfa261520880de0b6b3a7640000801ca0"

func nodeReplying(t *testing.T, status int, body string, seen *[]byte) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen, _ = io.ReadAll(r.Body)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBroadcastSendsEnvelope(t *testing.T) {
	var body []byte
	srv := nodeReplying(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"0xabc"}`, &body)

	resp, err := NewBroadcaster(srv.Client()).Broadcast(context.Background(), srv.URL, testPayload)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"method":"eth_sendRawTransaction","params":["`+testPayload+`"],"id":1,"jsonrpc":"2.0"}`,
		string(body),
	)
	assert.False(t, resp.HasError())
	hash, err := resp.TxHash()
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":"0xabc"}`, string(resp.Raw))
}

func TestBroadcastKeepsNodeError(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"insufficient funds for gas * price + value"}}`
	srv := nodeReplying(t, http.StatusOK, raw, nil)

	resp, err := NewBroadcaster(srv.Client()).Broadcast(context.Background(), srv.URL, testPayload)
	require.NoError(t, err)
	require.True(t, resp.HasError())
	assert.Equal(t, -32000, resp.RPCError().Code)
	assert.Equal(t, "insufficient funds for gas * price + value", resp.ErrorMessage())
	assert.Equal(t, raw, string(resp.Raw))

	_, err = resp.TxHash()
	assert.Error(t, err)
}

func TestBroadcastTransportFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "non json body", status: http.StatusOK, body: "<html>bad gateway</html>", wantStatus: http.StatusOK},
		{name: "server error", status: http.StatusInternalServerError, body: `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"boom"}}`, wantStatus: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", wantStatus: http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := nodeReplying(t, tt.status, tt.body, nil)
			resp, err := NewBroadcaster(srv.Client()).Broadcast(context.Background(), srv.URL, testPayload)
			require.Error(t, err)
			assert.Nil(t, resp)

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, tt.wantStatus, transportErr.StatusCode)
		})
	}
}

func TestBroadcastUnreachableNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewBroadcaster(nil).Broadcast(context.Background(), url, testPayload)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Zero(t, transportErr.StatusCode)
}

func TestBroadcastHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	start := time.Now()
	_, err := NewBroadcaster(client).Broadcast(context.Background(), srv.URL, testPayload)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestBroadcastHonoursContext(t *testing.T) {
	srv := nodeReplying(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"0xabc"}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBroadcaster(srv.Client()).Broadcast(ctx, srv.URL, testPayload)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponseTxHash(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "string result", body: `{"result":"0x1"}`, want: "0x1"},
		{name: "no result no error", body: `{"jsonrpc":"2.0","id":1}`, wantErr: true},
		{name: "null result", body: `{"result":null}`, wantErr: true},
		{name: "number result", body: `{"result":12}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			got, err := resp.TxHash()
			if tt.wantErr {
				var transportErr *TransportError
				assert.True(t, errors.As(err, &transportErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		hasError bool
		message  string
		code     int
	}{
		{name: "json-rpc error", body: `{"error":{"code":-32000,"message":"nonce too low"}}`, hasError: true, message: "nonce too low", code: -32000},
		{name: "string error", body: `{"error":"rate limited"}`, hasError: true, message: "rate limited"},
		{name: "numeric message", body: `{"error":{"code":3,"message":123}}`, hasError: true, message: `{"code":3,"message":123}`, code: 3},
		{name: "bare true", body: `{"error":true}`, hasError: true, message: "true"},
		{name: "absent", body: `{"result":"0x1"}`},
		{name: "null", body: `{"error":null,"result":"0x1"}`},
		{name: "false", body: `{"error":false,"result":"0x1"}`},
		{name: "empty string", body: `{"error":"","result":"0x1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.hasError, resp.HasError())
			if !tt.hasError {
				return
			}
			assert.Equal(t, tt.message, resp.ErrorMessage())
			assert.Equal(t, tt.code, resp.RPCError().Code)
			_, err := resp.TxHash()
			assert.Error(t, err)
		})
	}
}

func TestBroadcastKeepsNonObjectErrors(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":1,"error":"rate limited"}`
	srv := nodeReplying(t, http.StatusOK, raw, nil)

	resp, err := NewBroadcaster(srv.Client()).Broadcast(context.Background(), srv.URL, testPayload)
	require.NoError(t, err)
	assert.True(t, resp.HasError())
	assert.Equal(t, "rate limited", resp.ErrorMessage())
	assert.Equal(t, raw, string(resp.Raw))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://mainnet.infura.io", redact("https://mainnet.infura.io/v3/secret"))
	assert.Equal(t, "http://localhost:8545", redact("http://localhost:8545?key=x"))
	assert.Equal(t, "localhost", redact("localhost"))
}
