package contracts

import (
	"context"
	"time"
)

// AuthProvider supplies the bearer token attached to every outgoing request.
// Implementations must be safe for concurrent use.
type AuthProvider interface {
	Token(ctx context.Context) (string, error)
}

// Token is a credential together with the instant it stops being valid.
// A zero ExpiresAt means the token never expires.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenSource mints a fresh Token. It is called by refreshing providers
// whenever their cached token has expired.
type TokenSource interface {
	FetchToken(ctx context.Context) (*Token, error)
}

type TokenSourceFunc func(ctx context.Context) (*Token, error)

func (f TokenSourceFunc) FetchToken(ctx context.Context) (*Token, error) {
	return f(ctx)
}
