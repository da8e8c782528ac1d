package namaste

import (
	"github.com/fhirfly/namaste-sdk/internal/app/models"
)

type (
	Diagnosis         = models.Diagnosis
	Bundle            = models.Bundle
	MappingResult     = models.MappingResult
	UploadResponse    = models.UploadResponse
	TerminologyResult = models.TerminologyResult
)

// NewDiagnosis validates and builds a diagnosis. code must not be blank.
func NewDiagnosis(code, description string) (Diagnosis, error) {
	return models.NewDiagnosis(code, description)
}

// NewBundle validates and builds a bundle. id and patientName must not be blank.
func NewBundle(id, patientName string, diagnoses ...Diagnosis) (Bundle, error) {
	return models.NewBundle(id, patientName, diagnoses...)
}

func SampleDiagnosis() Diagnosis { return models.SampleDiagnosis() }

func SampleBundle() Bundle { return models.SampleBundle() }
