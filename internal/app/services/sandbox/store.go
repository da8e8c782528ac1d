package sandbox

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
)

type term struct {
	ID          string
	TermName    string
	NamasteCode string
	ICD11Code   string
	Description string
}

var seedTerms = []term{
	{ID: "1", TermName: "Jwara", NamasteCode: "NAM-001", ICD11Code: "ICD11-AB01", Description: "Fever"},
	{ID: "2", TermName: "Ajeerna", NamasteCode: "NAM-002", ICD11Code: "ICD11-DD90", Description: "Indigestion"},
	{ID: "3", TermName: "Kasa", NamasteCode: "NAM-003", ICD11Code: "ICD11-CA40", Description: "Cough"},
	{ID: "4", TermName: "Shwasa", NamasteCode: "NAM-004", ICD11Code: "ICD11-CB40", Description: "Breathlessness"},
	{ID: "5", TermName: "Hridroga", NamasteCode: "NAM-005", ICD11Code: "ICD11-BA00", Description: "Heart disease"},
}

// Store holds the sandbox fixtures and every bundle uploaded since start.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	mappings  map[string]string
	terms     []term
	diagnoses []responses.Diagnosis
	bundles   map[string]requests.BundlePayload
	patients  map[string]string
	now       func() time.Time
}

func NewStore() *Store {
	store := &Store{
		mappings: map[string]string{
			"NAM123": "ICD11-XYZ",
			"NAM456": "ICD11-ABC",
		},
		terms: seedTerms,
		diagnoses: []responses.Diagnosis{
			{Code: "NAM123", Description: "Sample Namaste Diagnosis"},
			{Code: "NAM456", Description: "Ajeerna (indigestion)"},
		},
		bundles:  map[string]requests.BundlePayload{},
		patients: map[string]string{},
		now:      time.Now,
	}
	for _, t := range seedTerms {
		store.mappings[t.NamasteCode] = t.ICD11Code
		store.diagnoses = append(store.diagnoses, responses.Diagnosis{Code: t.NamasteCode, Description: t.TermName})
	}

	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	store.bundles["BUNDLE-P001"] = requests.BundlePayload{
		BundleID:    "BUNDLE-P001",
		PatientName: "Samyak",
		Diagnoses: []requests.DiagnosisPayload{
			{Code: "NAM123", Description: "Sample Namaste Diagnosis"},
			{Code: "NAM-001", Description: "Jwara"},
		},
		CreatedAt: &created,
	}
	store.patients["P001"] = "BUNDLE-P001"
	return store
}

func (s *Store) Translate(code string) responses.Translation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.mappings[code]
	if !ok {
		found := false
		return responses.Translation{
			Namaste:     code,
			ICD:         constvars.TargetCodeUnknown,
			Message:     constvars.MappingNotFoundMessage,
			Equivalence: constvars.EquivalenceUnmatched,
			Found:       &found,
		}
	}
	found := true
	return responses.Translation{
		Namaste:     code,
		ICD:         target,
		Message:     constvars.MappingFoundMessage,
		Equivalence: constvars.EquivalenceEquivalent,
		Found:       &found,
	}
}

// Search matches query case-insensitively against term names, codes and
// descriptions.
func (s *Store) Search(query string) []responses.TerminologyResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	results := []responses.TerminologyResult{}
	if query == "" {
		return results
	}
	for _, t := range s.terms {
		haystack := strings.ToLower(strings.Join([]string{t.TermName, t.NamasteCode, t.ICD11Code, t.Description}, " "))
		if strings.Contains(haystack, query) {
			results = append(results, responses.TerminologyResult{
				ID:          t.ID,
				TermName:    t.TermName,
				NamasteCode: t.NamasteCode,
				ICD11Code:   t.ICD11Code,
				Description: t.Description,
			})
		}
	}
	return results
}

// SaveBundle stores payload unless a bundle with the same id exists. The
// returned response is the upload outcome reported to the client.
func (s *Store) SaveBundle(payload requests.BundlePayload) responses.Upload {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bundles[payload.BundleID]; exists {
		return responses.Upload{
			Success: false,
			Message: fmt.Sprintf("Bundle %s already exists", payload.BundleID),
		}
	}
	if payload.CreatedAt == nil {
		createdAt := s.now().UTC()
		payload.CreatedAt = &createdAt
	}
	s.bundles[payload.BundleID] = payload
	return responses.Upload{Success: true, Message: constvars.BundleUploadedMessage}
}

func (s *Store) Bundle(id string) (requests.BundlePayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bundle, ok := s.bundles[id]
	return bundle, ok
}

func (s *Store) Patient(id string) (requests.BundlePayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bundleID, ok := s.patients[id]
	if !ok {
		return requests.BundlePayload{}, false
	}
	bundle, ok := s.bundles[bundleID]
	return bundle, ok
}

// Diagnoses lists the seeded diagnoses followed by any code seen in an
// uploaded bundle, without duplicates.
func (s *Store) Diagnoses() []responses.Diagnosis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	diagnoses := make([]responses.Diagnosis, 0, len(s.diagnoses))
	for _, d := range s.diagnoses {
		seen[d.Code] = true
		diagnoses = append(diagnoses, d)
	}

	ids := make([]string, 0, len(s.bundles))
	for id := range s.bundles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, d := range s.bundles[id].Diagnoses {
			if !seen[d.Code] {
				seen[d.Code] = true
				diagnoses = append(diagnoses, responses.Diagnosis{Code: d.Code, Description: d.Description})
			}
		}
	}
	return diagnoses
}
