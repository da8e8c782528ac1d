package models

// TerminologyResult is one hit of a free-text terminology search.
type TerminologyResult struct {
	ID          string
	TermName    string
	NamasteCode string
	ICD11Code   string
	Description string
}
