package auth

import (
	"context"
	"os"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
)

type staticTokenProvider struct {
	token string
}

// NewStaticTokenProvider returns a provider that always yields token. An
// empty token fails every call with an auth error.
func NewStaticTokenProvider(token string) contracts.AuthProvider {
	return &staticTokenProvider{token: strings.TrimSpace(token)}
}

func (p *staticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return p.token, nil
}

type envTokenProvider struct {
	key string
}

// NewEnvTokenProvider reads the token from the environment variable key on
// every call, so rotating the variable takes effect without a restart.
func NewEnvTokenProvider(key string) contracts.AuthProvider {
	return &envTokenProvider{key: key}
}

func (p *envTokenProvider) Token(ctx context.Context) (string, error) {
	token := strings.TrimSpace(os.Getenv(p.key))
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return token, nil
}
