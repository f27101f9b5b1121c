package submitter

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tranvictor/txsubmit/util/account"
	"github.com/tranvictor/txsubmit/util/broadcaster"
)

const (
	titleSigning   = "SigningError"
	titleTransport = "TransportError"
	titleGeneric   = "Error"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// errorDetail is the single place where a failure becomes an ErrorDetail.
func errorDetail(err error) ErrorDetail {
	detail := ErrorDetail{
		Title:  titleGeneric,
		Detail: err.Error(),
	}

	var signErr *account.SigningError
	var transportErr *broadcaster.TransportError
	switch {
	case errors.As(err, &signErr):
		detail.Title = titleSigning
	case errors.As(err, &transportErr):
		detail.Title = titleTransport
		if transportErr.StatusCode != 0 {
			detail.Meta = map[string]interface{}{
				"httpStatus": transportErr.StatusCode,
			}
		}
	}

	detail.Stack = detail.Title + ": " + detail.Detail
	var tracer stackTracer
	if errors.As(err, &tracer) {
		detail.Stack += fmt.Sprintf("%+v", tracer.StackTrace())
	}
	return detail
}

func panicError(v interface{}) error {
	if err, ok := v.(error); ok {
		return errors.Wrap(err, "panic during submission")
	}
	return errors.Errorf("panic during submission: %v", v)
}
