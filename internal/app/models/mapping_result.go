package models

import (
	"fmt"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
)

// MappingResult is the outcome of translating a NAMASTE code into ICD-11.
// TargetCode is constvars.TargetCodeUnknown when no mapping exists.
type MappingResult struct {
	sourceCode  string
	targetCode  string
	message     string
	equivalence string
}

type mappingResultFields struct {
	SourceCode string `validate:"required,notblank"`
	TargetCode string `validate:"required,notblank"`
}

func NewMappingResult(sourceCode, targetCode, message, equivalence string) (*MappingResult, error) {
	if err := validate.Struct(mappingResultFields{SourceCode: sourceCode, TargetCode: targetCode}); err != nil {
		return nil, err
	}
	return &MappingResult{
		sourceCode:  sourceCode,
		targetCode:  targetCode,
		message:     message,
		equivalence: equivalence,
	}, nil
}

// NewUnmappedResult builds the "no mapping found" outcome for sourceCode.
func NewUnmappedResult(sourceCode string) *MappingResult {
	return &MappingResult{
		sourceCode:  sourceCode,
		targetCode:  constvars.TargetCodeUnknown,
		message:     constvars.MappingNotFoundMessage,
		equivalence: constvars.EquivalenceUnmatched,
	}
}

func (m *MappingResult) SourceCode() string  { return m.sourceCode }
func (m *MappingResult) TargetCode() string  { return m.targetCode }
func (m *MappingResult) Message() string     { return m.message }
func (m *MappingResult) Equivalence() string { return m.equivalence }

// Found reports whether the upstream knew a target code.
func (m *MappingResult) Found() bool {
	return m.targetCode != constvars.TargetCodeUnknown
}

func (m *MappingResult) String() string {
	return fmt.Sprintf("%s -> %s : %s", m.sourceCode, m.targetCode, m.message)
}
