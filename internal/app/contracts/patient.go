package contracts

import (
	"context"

	"github.com/fhirfly/namaste-sdk/internal/app/models"
)

type PatientService interface {
	GetPatientByID(ctx context.Context, patientID string) (*models.Bundle, error)
	ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error)
}
