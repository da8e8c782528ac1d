package models

import "fmt"

// Diagnosis is a NAMASTE diagnosis code with its human readable description.
type Diagnosis struct {
	code        string
	description string
}

type diagnosisFields struct {
	Code        string `validate:"required,notblank,max=64"`
	Description string `validate:"max=1024"`
}

func NewDiagnosis(code, description string) (Diagnosis, error) {
	if err := validate.Struct(diagnosisFields{Code: code, Description: description}); err != nil {
		return Diagnosis{}, err
	}
	return Diagnosis{code: code, description: description}, nil
}

// SampleDiagnosis returns the fixture diagnosis used by demos and tests.
func SampleDiagnosis() Diagnosis {
	return Diagnosis{code: "NAM123", description: "Sample Namaste Diagnosis"}
}

func (d Diagnosis) Code() string        { return d.code }
func (d Diagnosis) Description() string { return d.description }

func (d Diagnosis) String() string {
	return fmt.Sprintf("%s: %s", d.code, d.description)
}
