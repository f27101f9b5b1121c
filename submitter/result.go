package submitter

// Result codes of the ERROR variant. They are part of the public contract
// and must not change.
const (
	// CodeNodeRejected means the node received the tx and refused it
	// (insufficient funds, nonce too low, underpriced...).
	CodeNodeRejected = 201
	// CodeUnexpected covers every other failure: signing, transport,
	// malformed responses.
	CodeUnexpected = 500
)

type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// Result is the outcome of one submission. Exactly one of Data (OK) or
// Code and Errors (ERROR) is set.
type Result struct {
	Status Status        `json:"status"`
	Data   *Data         `json:"data,omitempty"`
	Code   int           `json:"code,omitempty"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

type Data struct {
	TxID string `json:"tx_id"`
}

type ErrorDetail struct {
	Title  string                 `json:"title"`
	Detail string                 `json:"detail"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
	Stack  string                 `json:"stack,omitempty"`
}

func OK(txID string) Result {
	return Result{
		Status: StatusOK,
		Data:   &Data{TxID: txID},
	}
}

func Failure(code int, details ...ErrorDetail) Result {
	return Result{
		Status: StatusError,
		Code:   code,
		Errors: details,
	}
}

func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// TxID is empty for ERROR results.
func (r Result) TxID() string {
	if r.Data == nil {
		return ""
	}
	return r.Data.TxID
}
