package responses

type Translation struct {
	Namaste     string `json:"namaste,omitempty"`
	ICD         string `json:"icd"`
	Message     string `json:"message,omitempty"`
	Equivalence string `json:"equivalence,omitempty"`
	Found       *bool  `json:"found,omitempty"`
}

type Upload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Diagnosis struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type DiagnosisList struct {
	Diagnoses []Diagnosis `json:"diagnoses"`
}

type TerminologyResult struct {
	ID          string `json:"id"`
	TermName    string `json:"termName"`
	NamasteCode string `json:"namasteCode"`
	ICD11Code   string `json:"icd11Code"`
	Description string `json:"description,omitempty"`
}

type TerminologySearch struct {
	Results []TerminologyResult `json:"results"`
}

type Health struct {
	Status string `json:"status"`
}
