package contracts

import (
	"context"

	"github.com/fhirfly/namaste-sdk/internal/app/models"
)

type BundleService interface {
	UploadBundle(ctx context.Context, bundle models.Bundle) (*models.UploadResponse, error)
	GetBundle(ctx context.Context, bundleID string) (*models.Bundle, error)
}
