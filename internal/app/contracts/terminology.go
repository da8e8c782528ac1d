package contracts

import (
	"context"

	"github.com/fhirfly/namaste-sdk/internal/app/models"
)

type TerminologyService interface {
	TranslateDiagnosis(ctx context.Context, code string) (*models.MappingResult, error)
	SearchTerminology(ctx context.Context, query string) ([]models.TerminologyResult, error)
}
