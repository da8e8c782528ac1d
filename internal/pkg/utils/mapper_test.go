package utils

import (
	"testing"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlePayloadMapping(t *testing.T) {
	t.Run("Bundle To Payload And Back", func(t *testing.T) {
		stamp := time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC)
		bundle, err := models.NewBundle("B7", "Meera", models.SampleDiagnosis())
		require.NoError(t, err)
		bundle = bundle.WithCreatedAt(stamp)

		payload := BuildBundlePayload(bundle)
		assert.Equal(t, "B7", payload.BundleID)
		require.NotNil(t, payload.CreatedAt)

		decoded, err := BuildBundleFromPayload(payload)
		require.NoError(t, err)
		assert.Equal(t, bundle.ID(), decoded.ID())
		assert.Equal(t, bundle.PatientName(), decoded.PatientName())
		assert.Equal(t, bundle.Diagnoses(), decoded.Diagnoses())
		assert.True(t, stamp.Equal(decoded.CreatedAt()))
	})

	t.Run("Zero CreatedAt Omitted", func(t *testing.T) {
		payload := BuildBundlePayload(models.SampleBundle())
		assert.Nil(t, payload.CreatedAt)
		assert.Empty(t, payload.Diagnoses)
	})

	t.Run("Invalid Payload Rejected", func(t *testing.T) {
		_, err := BuildBundleFromPayload(&requests.BundlePayload{BundleID: "B1"})
		assert.Error(t, err)
	})
}

func TestBuildDiagnosesFromResponse(t *testing.T) {
	diagnoses, err := BuildDiagnosesFromResponse(&responses.DiagnosisList{
		Diagnoses: []responses.Diagnosis{{Code: "NAM123", Description: "Sample"}, {Code: "NAM456"}},
	})
	require.NoError(t, err)
	assert.Len(t, diagnoses, 2)

	_, err = BuildDiagnosesFromResponse(&responses.DiagnosisList{Diagnoses: []responses.Diagnosis{{Code: ""}}})
	assert.Error(t, err)
}
