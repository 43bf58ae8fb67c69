package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/errors"
)

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "ignored"))
	})

	t.Run("plain error gets code", func(t *testing.T) {
		base := stderrors.New("connection refused")
		err := errors.Wrap(base, errors.CodeTransportError, "GET failed")

		require.NotNil(t, err)
		assert.Equal(t, errors.CodeTransportError, err.Code)
		assert.ErrorIs(t, err, base)
		assert.Equal(t, "[TRANSPORT_ERROR] GET failed: connection refused", err.Error())
	})

	t.Run("existing app error keeps inner code", func(t *testing.T) {
		inner := errors.New(errors.CodeResourceNotFound, "topic not found")
		err := errors.Wrap(inner, errors.CodeInternal, "outer")

		assert.Same(t, inner, err)
		assert.True(t, errors.Is(err, errors.CodeResourceNotFound))
	})

	t.Run("app error behind fmt wrapping keeps inner code", func(t *testing.T) {
		inner := errors.New(errors.CodeDecodeError, "topic payload is not JSON")
		err := errors.Wrap(fmt.Errorf("reading topics: %w", inner), errors.CodeTransportError, "outer")

		assert.Same(t, inner, err)
		assert.Equal(t, errors.CodeDecodeError, errors.GetCode(err))
	})
}

func TestWrapUserFacing_KeepsInnerStack(t *testing.T) {
	inner := errors.New(errors.CodeOutputWriteError, "disk full")
	err := errors.WrapUserFacing(inner, errors.CodeOutputWriteError, "cannot write topics.tf", "Free some space.")

	assert.True(t, err.IsUserFacing)
	assert.Equal(t, inner.StackTrace, err.StackTrace)
	assert.Equal(t, "[OUTPUT_WRITE_ERROR] disk full", err.InternalDetails)
	assert.ErrorIs(t, err, inner)
}

func TestKindLocal(t *testing.T) {
	assert.True(t, errors.KindLocal(errors.New(errors.CodeHCLRenderError, "topics.tf did not verify")))
	assert.True(t, errors.KindLocal(fmt.Errorf("topics: %w", errors.New(errors.CodeHCLRenderError, "x"))))
	assert.False(t, errors.KindLocal(errors.New(errors.CodeOutputWriteError, "disk full")))
	assert.False(t, errors.KindLocal(errors.New(errors.CodeInvariantError, "duplicate address")))
	assert.False(t, errors.KindLocal(stderrors.New("plain")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("x")))
	assert.Equal(t, errors.CodeDecodeError, errors.GetCode(errors.New(errors.CodeDecodeError, "bad json")))
}

func TestGetUserFacingMessage(t *testing.T) {
	t.Run("user facing", func(t *testing.T) {
		err := errors.NewUserFacing(errors.CodeConfigValidation, "host is required", "Pass the AxonOps host as the first argument.")
		msg, suggestion, ok := errors.GetUserFacingMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "host is required", msg)
		assert.Equal(t, "Pass the AxonOps host as the first argument.", suggestion)
	})

	t.Run("wrapped user facing", func(t *testing.T) {
		inner := errors.NewUserFacing(errors.CodeOutputWriteError, "cannot create output directory", "")
		outer := errors.WrapUserFacing(stderrors.Join(inner), errors.CodeOutputWriteError, "output unavailable", "Check permissions.")
		msg, suggestion, ok := errors.GetUserFacingMessage(outer)
		assert.True(t, ok)
		assert.Equal(t, "output unavailable", msg)
		assert.Equal(t, "Check permissions.", suggestion)
	})

	t.Run("internal only", func(t *testing.T) {
		_, _, ok := errors.GetUserFacingMessage(errors.New(errors.CodeInternal, "boom"))
		assert.False(t, ok)
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.CodeUpstreamStatus, "unexpected status").WithDetails("status %d for %s", 503, "http://h/api")
	assert.Equal(t, "status 503 for http://h/api", err.InternalDetails)
}
