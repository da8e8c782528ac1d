package utils

import (
	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
)

func BuildBundlePayload(bundle models.Bundle) *requests.BundlePayload {
	payload := &requests.BundlePayload{
		BundleID:    bundle.ID(),
		PatientName: bundle.PatientName(),
	}
	for _, diagnosis := range bundle.Diagnoses() {
		payload.Diagnoses = append(payload.Diagnoses, requests.DiagnosisPayload{
			Code:        diagnosis.Code(),
			Description: diagnosis.Description(),
		})
	}
	if createdAt := bundle.CreatedAt(); !createdAt.IsZero() {
		payload.CreatedAt = &createdAt
	}
	return payload
}
