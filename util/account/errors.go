package account

import (
	"github.com/pkg/errors"
)

// SigningError is returned by EndpointSigner.Sign for every failure:
// bad key material, incomplete params or a failed chain id lookup.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return "couldn't sign the tx: " + e.Err.Error()
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

func signingError(err error, msg string) error {
	return &SigningError{Err: errors.Wrap(err, msg)}
}

func signingErrorf(format string, args ...interface{}) error {
	return &SigningError{Err: errors.Errorf(format, args...)}
}
