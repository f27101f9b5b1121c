package broadcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultTimeout = 30 * time.Second
	// node replies to eth_sendRawTransaction are tiny, anything bigger is
	// not a json-rpc response
	maxResponseSize = 4 << 20
)

// Broadcaster posts a signed tx to a node exactly once. It keeps no state
// between calls apart from the http client so it is safe for concurrent
// use.
type Broadcaster struct {
	client *http.Client
}

func NewBroadcaster(client *http.Client) *Broadcaster {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Broadcaster{client: client}
}

// data must be hex encoded of the signed tx.
// A nil error means the node answered with a json-rpc response, which can
// still carry a node side error.
func (b *Broadcaster) Broadcast(ctx context.Context, endpoint string, data string) (*Response, error) {
	body, err := json.Marshal(NewSendRawTransactionEnvelope(data))
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "couldn't encode json-rpc request")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "couldn't build request")}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrapf(err, "POST %s failed", redact(endpoint))}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "couldn't read node response"), StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Err:        errors.Errorf("node responded with status %d: %s", resp.StatusCode, snippet(raw)),
			StatusCode: resp.StatusCode,
		}
	}

	result := &Response{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, &TransportError{
			Err:        errors.Wrapf(err, "couldn't decode node response %s", snippet(raw)),
			StatusCode: resp.StatusCode,
		}
	}
	result.Raw = json.RawMessage(raw)
	return result, nil
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 256 {
		return s[:256] + "..."
	}
	return s
}

// redact drops the path and query of the endpoint since providers commonly
// put api keys there.
func redact(endpoint string) string {
	if i := strings.Index(endpoint, "://"); i >= 0 {
		rest := endpoint[i+3:]
		if j := strings.IndexAny(rest, "/?"); j >= 0 {
			return endpoint[:i+3+j]
		}
	}
	return endpoint
}
