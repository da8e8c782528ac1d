package middlewares

import (
	"sync"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	tokenHashes    []string
	verified       sync.Map
}

// NewMiddlewares hashes the configured plaintext sandbox tokens once so
// requests are only ever compared against bcrypt hashes.
func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) (*Middlewares, error) {
	hashes := append([]string{}, internalConfig.Sandbox.APITokenHashes...)
	for _, token := range internalConfig.Sandbox.APITokens {
		hash, err := utils.HashToken(token)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}

	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		tokenHashes:    hashes,
	}, nil
}
