package models

import (
	"fmt"
	"time"
)

// Bundle is a clinical record package uploaded to, or fetched from, the
// NAMASTE bundle endpoint. The zero CreatedAt means the server decides.
type Bundle struct {
	id          string
	patientName string
	diagnoses   []Diagnosis
	createdAt   time.Time
}

type bundleFields struct {
	ID          string `validate:"required,notblank,max=128"`
	PatientName string `validate:"required,notblank,max=256"`
}

func NewBundle(id, patientName string, diagnoses ...Diagnosis) (Bundle, error) {
	if err := validate.Struct(bundleFields{ID: id, PatientName: patientName}); err != nil {
		return Bundle{}, err
	}
	return Bundle{
		id:          id,
		patientName: patientName,
		diagnoses:   copyDiagnoses(diagnoses),
	}, nil
}

// SampleBundle returns the fixture bundle used by demos and tests.
func SampleBundle() Bundle {
	return Bundle{id: "BUNDLE123", patientName: "Samyak"}
}

// WithCreatedAt returns a copy of b stamped with t.
func (b Bundle) WithCreatedAt(t time.Time) Bundle {
	b.diagnoses = copyDiagnoses(b.diagnoses)
	b.createdAt = t
	return b
}

func (b Bundle) ID() string           { return b.id }
func (b Bundle) PatientName() string  { return b.patientName }
func (b Bundle) CreatedAt() time.Time { return b.createdAt }

// Diagnoses returns a copy; mutating it does not affect b.
func (b Bundle) Diagnoses() []Diagnosis {
	return copyDiagnoses(b.diagnoses)
}

func (b Bundle) String() string {
	return fmt.Sprintf("Bundle{id=%s, patientName=%s, diagnoses=%d}", b.id, b.patientName, len(b.diagnoses))
}

func copyDiagnoses(diagnoses []Diagnosis) []Diagnosis {
	if len(diagnoses) == 0 {
		return nil
	}
	out := make([]Diagnosis, len(diagnoses))
	copy(out, diagnoses)
	return out
}
