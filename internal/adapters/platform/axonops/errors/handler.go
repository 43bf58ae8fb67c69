package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"

	"github.com/olusolaa/axonops-importer/internal/errors"
)

// HandleAPIError maps a failed GET onto an application error code.
// status is zero when no response was received.
func HandleAPIError(ctx context.Context, url string, status int, err error) error {
	if ctx.Err() != nil {
		code := errors.CodeTransportError
		if stderrs.Is(ctx.Err(), context.DeadlineExceeded) {
			code = errors.CodeTimeout
		}
		return errors.Wrap(ctx.Err(), code, fmt.Sprintf("request to %s canceled", url))
	}

	if err != nil {
		if stderrs.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return errors.Wrap(err, errors.CodeTimeout, fmt.Sprintf("request to %s timed out", url))
		}
		return errors.Wrap(err, errors.CodeTransportError, fmt.Sprintf("request to %s failed", url))
	}

	statusText := fmt.Sprintf("%d %s", status, http.StatusText(status))
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.New(errors.CodePlatformAuthError, fmt.Sprintf("AxonOps rejected the credentials for %s", url)).
			WithDetails("GET %s: %s", url, statusText)
	case status == http.StatusNotFound:
		return errors.New(errors.CodeResourceNotFound, fmt.Sprintf("%s not found", url)).
			WithDetails("GET %s: %s", url, statusText)
	case status < 200 || status > 299:
		return errors.New(errors.CodeUpstreamStatus, fmt.Sprintf("unexpected status %s from %s", statusText, url)).
			WithDetails("GET %s: %s", url, statusText)
	}

	return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AxonOps error handler for %s", url))
}

func isTimeout(err error) bool {
	var netErr net.Error
	return stderrs.As(err, &netErr) && netErr.Timeout()
}

// DefaultErrorHandler implements shared.ErrorHandler.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(ctx context.Context, url string, status int, err error) error {
	return HandleAPIError(ctx, url, status, err)
}
