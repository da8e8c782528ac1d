package utils

import (
	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
)

func BuildBundleFromPayload(payload *requests.BundlePayload) (models.Bundle, error) {
	diagnoses := make([]models.Diagnosis, 0, len(payload.Diagnoses))
	for _, item := range payload.Diagnoses {
		diagnosis, err := models.NewDiagnosis(item.Code, item.Description)
		if err != nil {
			return models.Bundle{}, err
		}
		diagnoses = append(diagnoses, diagnosis)
	}

	bundle, err := models.NewBundle(payload.BundleID, payload.PatientName, diagnoses...)
	if err != nil {
		return models.Bundle{}, err
	}
	if payload.CreatedAt != nil {
		bundle = bundle.WithCreatedAt(*payload.CreatedAt)
	}
	return bundle, nil
}

func BuildDiagnosesFromResponse(response *responses.DiagnosisList) ([]models.Diagnosis, error) {
	diagnoses := make([]models.Diagnosis, 0, len(response.Diagnoses))
	for _, item := range response.Diagnoses {
		diagnosis, err := models.NewDiagnosis(item.Code, item.Description)
		if err != nil {
			return nil, err
		}
		diagnoses = append(diagnoses, diagnosis)
	}
	return diagnoses, nil
}

func BuildTerminologyResults(response *responses.TerminologySearch) []models.TerminologyResult {
	results := make([]models.TerminologyResult, 0, len(response.Results))
	for _, item := range response.Results {
		results = append(results, models.TerminologyResult{
			ID:          item.ID,
			TermName:    item.TermName,
			NamasteCode: item.NamasteCode,
			ICD11Code:   item.ICD11Code,
			Description: item.Description,
		})
	}
	return results
}
