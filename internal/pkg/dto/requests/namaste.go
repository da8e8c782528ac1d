package requests

import "time"

type DiagnosisPayload struct {
	Code        string `json:"code" validate:"required,notblank"`
	Description string `json:"description,omitempty"`
}

// BundlePayload is the JSON body of POST /bundle/upload and the body returned
// by GET /bundle/{id} and GET /patient/{id}.
type BundlePayload struct {
	BundleID    string             `json:"bundleId" validate:"required,notblank"`
	PatientName string             `json:"patientName" validate:"required,notblank"`
	Diagnoses   []DiagnosisPayload `json:"diagnoses,omitempty" validate:"dive"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty"`
}
