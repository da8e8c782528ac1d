package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenHash(t *testing.T) {
	hash, err := HashToken("sandbox-token")
	require.NoError(t, err)

	assert.True(t, CheckTokenHash("sandbox-token", hash))
	assert.False(t, CheckTokenHash("other-token", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Run("Valid Token", func(t *testing.T) {
		token, err := GenerateJWT("namaste-client", "secret", time.Minute)
		require.NoError(t, err)

		subject, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "namaste-client", subject)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateJWT("namaste-client", "secret", time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateJWT("namaste-client", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, "secret")
		assert.Error(t, err)
	})
}
