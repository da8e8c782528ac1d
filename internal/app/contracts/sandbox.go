package contracts

import (
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
)

// SandboxStore backs the sandbox API server.
type SandboxStore interface {
	Translate(code string) responses.Translation
	Search(query string) []responses.TerminologyResult
	SaveBundle(payload requests.BundlePayload) responses.Upload
	Bundle(id string) (requests.BundlePayload, bool)
	Patient(id string) (requests.BundlePayload, bool)
	Diagnoses() []responses.Diagnosis
}
