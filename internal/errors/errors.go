// Package errors carries the importer's coded errors. Every failure that can
// stop a run (bad arguments, an unreachable AxonOps API, an unwritable output
// directory) reaches the CLI as an *AppError so it can print a one-line reason
// and a suggested fix instead of a Go error chain.
package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// AppError is a coded error. Message and SuggestedAction are printed by the
// CLI only when IsUserFacing is set; InternalDetails and WrappedError go to
// the log.
type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	WrappedError    error
	StackTrace      string
}

func (e *AppError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

// WithDetails attaches internal context (URL, status line, response excerpt)
// that is logged but never shown to the user.
func (e *AppError) WithDetails(format string, args ...any) *AppError {
	e.InternalDetails = fmt.Sprintf(format, args...)
	return e
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

// NewUserFacing is for failures the operator can fix themselves, such as a
// missing argument or an out-of-range rate limit.
func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// Wrap codes a plain error. If err already carries an AppError anywhere in
// its chain, that AppError is returned as is: a DECODE_ERROR raised while
// reading a topic payload stays a DECODE_ERROR even when the caller would
// have labelled it TRANSPORT_ERROR.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

// WrapUserFacing always adds a new user-facing layer with its own code. The
// inner AppError's text moves to InternalDetails and its stack is kept.
func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	stack := string(debug.Stack())
	details := ""
	var appErr *AppError
	if errors.As(err, &appErr) {
		stack = appErr.StackTrace
		details = appErr.Error()
	}

	return &AppError{
		Code:            code,
		Message:         message,
		InternalDetails: details,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		WrappedError:    err,
		StackTrace:      stack,
	}
}

// GetCode returns the code of the outermost AppError, or CodeUnknown.
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// KindLocal reports whether err only invalidates the output of the kind being
// imported. Such a kind is reported as failed and the run moves on to the
// next kind; any other error ends the run.
func KindLocal(err error) bool {
	return Is(err, CodeHCLRenderError)
}

// GetUserFacingMessage returns the message and suggestion of the outermost
// user-facing AppError in the chain. When there is none, it falls back to a
// generic message pointing at debug logging and reports false.
func GetUserFacingMessage(err error) (string, string, bool) {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		appErr, ok := cur.(*AppError)
		if ok && appErr.IsUserFacing {
			return appErr.Message, appErr.SuggestedAction, true
		}
	}
	return "An unexpected error occurred.", "Re-run with --log-level debug for more details.", false
}
