package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	algHS256 = "HS256"
	algES256 = "ES256"
	algRS256 = "RS256"

	defaultJWTTTL = 5 * time.Minute
)

// JWTTokenSourceConfig describes how assertions are signed. Secret is used for
// HS256, PrivateKeyPEM for ES256 and RS256.
type JWTTokenSourceConfig struct {
	Alg           string
	Secret        string
	PrivateKeyPEM string
	Subject       string
	TTL           time.Duration
}

// JWTTokenSource mints short-lived signed assertions used as bearer tokens.
type JWTTokenSource struct {
	log     *zap.Logger
	alg     string
	subject string
	ttl     time.Duration
	now     func() time.Time
	method  jwt.SigningMethod
	key     interface{}
}

func NewJWTTokenSource(cfg JWTTokenSourceConfig, log *zap.Logger) (*JWTTokenSource, error) {
	alg := strings.ToUpper(strings.TrimSpace(cfg.Alg))
	if alg == "" {
		alg = algHS256
	}
	if strings.TrimSpace(cfg.Subject) == "" {
		return nil, exceptions.ErrInvalidArgument("jwt subject")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultJWTTTL
	}

	source := &JWTTokenSource{
		log:     log,
		alg:     alg,
		subject: cfg.Subject,
		ttl:     ttl,
		now:     time.Now,
	}

	switch alg {
	case algHS256:
		if cfg.Secret == "" {
			return nil, exceptions.ErrTokenSigningKey(errors.New("HS256 secret is empty"))
		}
		source.method = jwt.SigningMethodHS256
		source.key = []byte(cfg.Secret)
	case algES256:
		block, err := decodePEM(cfg.PrivateKeyPEM)
		if err != nil {
			return nil, exceptions.ErrTokenSigningKey(err)
		}
		ecKey, err := parseECPrivateKey(block)
		if err != nil {
			return nil, exceptions.ErrTokenSigningKey(err)
		}
		source.method = jwt.SigningMethodES256
		source.key = ecKey
	case algRS256:
		block, err := decodePEM(cfg.PrivateKeyPEM)
		if err != nil {
			return nil, exceptions.ErrTokenSigningKey(err)
		}
		rsaKey, err := parseRSAPrivateKey(block)
		if err != nil {
			return nil, exceptions.ErrTokenSigningKey(err)
		}
		source.method = jwt.SigningMethodRS256
		source.key = rsaKey
	default:
		return nil, exceptions.ErrTokenUnsupportedAlg(alg)
	}

	return source, nil
}

// FetchToken signs a new assertion with iat and nbf set to now.
func (s *JWTTokenSource) FetchToken(ctx context.Context) (*contracts.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("JWTTokenSource.FetchToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": s.subject,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.key)
	if err != nil {
		s.log.Error("JWTTokenSource.FetchToken error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenSigningKey(err)
	}

	return &contracts.Token{Value: signed, ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC()}, nil
}

func decodePEM(pemKey string) (*pem.Block, error) {
	pemKey = strings.TrimSpace(pemKey)
	if pemKey == "" {
		return nil, errors.New("private key is empty")
	}
	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM private key")
	}
	return block, nil
}

func parseECPrivateKey(block *pem.Block) (*ecdsa.PrivateKey, error) {
	switch block.Type {
	case "EC PRIVATE KEY":
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse EC private key: %w", err)
		}
		return key, nil
	case "PRIVATE KEY":
		keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS8 private key: %w", err)
		}
		if ec, ok := keyAny.(*ecdsa.PrivateKey); ok {
			return ec, nil
		}
		return nil, errors.New("PKCS8 key is not ECDSA")
	default:
		return nil, fmt.Errorf("unsupported EC PEM type: %s", block.Type)
	}
}

func parseRSAPrivateKey(block *pem.Block) (*rsa.PrivateKey, error) {
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS1 private key: %w", err)
		}
		return key, nil
	case "PRIVATE KEY":
		keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS8 private key: %w", err)
		}
		if rsaKey, ok := keyAny.(*rsa.PrivateKey); ok {
			return rsaKey, nil
		}
		return nil, errors.New("PKCS8 key is not RSA")
	default:
		return nil, fmt.Errorf("unsupported RSA PEM type: %s", block.Type)
	}
}
