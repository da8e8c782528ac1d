package exceptions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorChain(t *testing.T) {
	t.Run("Kind Is Found Through Wrapping", func(t *testing.T) {
		transportErr := ErrHTTPStatus(503, "http://api/translate", []byte("down"))
		serviceErr := ErrUpstream(transportErr, "MappingResult")
		wrapped := fmt.Errorf("namaste: translate: %w", serviceErr)

		assert.True(t, IsKind(wrapped, KindUpstream), "outer service kind should be visible")
		assert.True(t, IsKind(wrapped, KindHTTP), "inner transport kind should be visible")
		assert.False(t, IsKind(wrapped, KindTimeout))
		assert.Equal(t, KindUpstream, KindOf(wrapped))
		assert.Equal(t, 503, StatusCode(wrapped))
	})

	t.Run("Unwrap Reaches Cause", func(t *testing.T) {
		customErr := ErrRequestTimeout(context.DeadlineExceeded, "http://api/diagnoses")
		assert.True(t, errors.Is(customErr, context.DeadlineExceeded))
		assert.Equal(t, KindTimeout, customErr.Kind)
	})

	t.Run("Status Code Is Zero Without HTTP Response", func(t *testing.T) {
		assert.Equal(t, 0, StatusCode(ErrSendHTTPRequest(errors.New("connection refused"))))
		assert.Equal(t, 0, StatusCode(errors.New("plain")))
		assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	})

	t.Run("Location Points At Caller", func(t *testing.T) {
		customErr := ErrInvalidArgument("code")
		assert.Contains(t, customErr.Location.File, "error_test.go")
		assert.Contains(t, customErr.Error(), "invalid_argument")
	})
}
