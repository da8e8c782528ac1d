package patients

import (
	"context"
	"testing"

	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTransport struct {
	bodies map[string]string
	err    error
}

func (f *fakeTransport) Get(ctx context.Context, path string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.bodies[path]
	if !ok {
		return nil, exceptions.ErrHTTPStatus(404, path, nil)
	}
	return []byte(body), nil
}

func (f *fakeTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return f.Get(ctx, path)
}

func TestPatientService(t *testing.T) {
	transport := &fakeTransport{bodies: map[string]string{
		"/patient/P001": `{"bundleId":"BUNDLE123","patientName":"Samyak","diagnoses":[{"code":"NAM123"}]}`,
		"/diagnoses":    `{"diagnoses":[{"code":"NAM123","description":"Sample Namaste Diagnosis"},{"code":"NAM456","description":"Ajeerna"}]}`,
	}}
	service := NewPatientService(transport, zap.NewNop())
	ctx := context.Background()

	t.Run("Get Patient By ID", func(t *testing.T) {
		patient, err := service.GetPatientByID(ctx, "P001")
		require.NoError(t, err)
		assert.Equal(t, "Samyak", patient.PatientName())
		assert.Len(t, patient.Diagnoses(), 1)
	})

	t.Run("Unknown Patient Is Not Found", func(t *testing.T) {
		_, err := service.GetPatientByID(ctx, "P404")
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})

	t.Run("Blank Patient ID Is Rejected", func(t *testing.T) {
		_, err := service.GetPatientByID(ctx, "")
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidArgument))
	})

	t.Run("List Diagnoses", func(t *testing.T) {
		diagnoses, err := service.ListDiagnoses(ctx)
		require.NoError(t, err)
		require.Len(t, diagnoses, 2)
		assert.Equal(t, "NAM456", diagnoses[1].Code())
		assert.Equal(t, "Ajeerna", diagnoses[1].Description())
	})

	t.Run("List Diagnoses Upstream Failure", func(t *testing.T) {
		failing := NewPatientService(&fakeTransport{err: exceptions.ErrSendHTTPRequest(nil)}, zap.NewNop())
		_, err := failing.ListDiagnoses(ctx)
		assert.Equal(t, exceptions.KindUpstream, exceptions.KindOf(err))
		assert.True(t, exceptions.IsKind(err, exceptions.KindNetwork))
	})
}
