package broadcaster

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	JSONRPCVersion           = "2.0"
	SendRawTransactionID     = 1
	MethodSendRawTransaction = "eth_sendRawTransaction"
)

// Envelope is the json-rpc request body.
type Envelope struct {
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
	JSONRPC string        `json:"jsonrpc"`
}

func NewSendRawTransactionEnvelope(data string) Envelope {
	return Envelope{
		Method:  MethodSendRawTransaction,
		Params:  []interface{}{data},
		ID:      SendRawTransactionID,
		JSONRPC: JSONRPCVersion,
	}
}

type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Response is the node's reply. Raw keeps the body exactly as received.
//
// Error stays undecoded: nodes and proxies don't all follow json-rpc, and a
// string or a malformed object is still a rejection.
type Response struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// HasError is false when error is absent or a json falsy value (null,
// false, 0 or "").
func (r *Response) HasError() bool {
	switch strings.TrimSpace(string(r.Error)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// RPCError decodes the error as a json-rpc error object. Fields that are
// missing or of another type stay zero.
func (r *Response) RPCError() RPCError {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Error, &fields); err != nil {
		return RPCError{}
	}
	var e RPCError
	json.Unmarshal(fields["code"], &e.Code)
	json.Unmarshal(fields["message"], &e.Message)
	e.Data = fields["data"]
	return e
}

// ErrorMessage is the error's string message, the error itself when it is
// a json string, or its raw text otherwise.
func (r *Response) ErrorMessage() string {
	var s string
	if err := json.Unmarshal(r.Error, &s); err == nil {
		return s
	}
	if msg := r.RPCError().Message; msg != "" {
		return msg
	}
	return strings.TrimSpace(string(r.Error))
}

// TxHash returns the result as a string. The node must have answered
// without an error and with a string result.
func (r *Response) TxHash() (string, error) {
	if r.HasError() {
		return "", fmt.Errorf("node returned an error: %s", r.ErrorMessage())
	}
	if len(r.Result) == 0 || string(r.Result) == "null" {
		return "", &TransportError{Err: errors.New("node response has neither result nor error")}
	}
	var hash string
	if err := json.Unmarshal(r.Result, &hash); err != nil {
		return "", &TransportError{Err: errors.Wrapf(err, "node result %s is not a string", string(r.Result))}
	}
	return hash, nil
}

// TransportError covers everything between sending the request and having
// a decoded json-rpc response: bad url, network errors, timeouts, non 2xx
// statuses and undecodable bodies.
type TransportError struct {
	Err        error
	StatusCode int
}

func (e *TransportError) Error() string {
	return "json-rpc transport failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
