package bundle

import (
	"context"
	"testing"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTransport struct {
	body     string
	err      error
	path     string
	postBody []byte
}

func (f *fakeTransport) Get(ctx context.Context, path string) ([]byte, error) {
	f.path = path
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func (f *fakeTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	f.postBody = body
	return f.Get(ctx, path)
}

func TestUploadBundle(t *testing.T) {
	ctx := context.Background()

	t.Run("Serializes Bundle And Reports Success", func(t *testing.T) {
		transport := &fakeTransport{body: `{"success":true,"message":"Bundle uploaded successfully"}`}
		diagnosis, err := models.NewDiagnosis("NAM123", "Sample Namaste Diagnosis")
		require.NoError(t, err)
		bundle, err := models.NewBundle("BUNDLE123", "Samyak", diagnosis)
		require.NoError(t, err)
		bundle = bundle.WithCreatedAt(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))

		response, err := NewBundleService(transport, zap.NewNop()).UploadBundle(ctx, bundle)
		require.NoError(t, err)
		assert.True(t, response.Success())
		assert.Equal(t, "Bundle uploaded successfully", response.Message())
		assert.Equal(t, "/bundle/upload", transport.path)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(transport.postBody, &sent))
		assert.Equal(t, "BUNDLE123", sent["bundleId"])
		assert.Equal(t, "Samyak", sent["patientName"])
		assert.Equal(t, "2024-01-15T10:30:00Z", sent["createdAt"])
		assert.Len(t, sent["diagnoses"], 1)
	})

	t.Run("Soft Failure Is Not An Error", func(t *testing.T) {
		transport := &fakeTransport{body: `{"success":false,"message":"duplicate bundle"}`}
		response, err := NewBundleService(transport, zap.NewNop()).UploadBundle(ctx, models.SampleBundle())
		require.NoError(t, err)
		assert.False(t, response.Success())
		assert.Equal(t, "duplicate bundle", response.Message())
	})

	t.Run("Non 2xx Is An Upstream Error", func(t *testing.T) {
		transport := &fakeTransport{err: exceptions.ErrHTTPStatus(500, "u", nil)}
		_, err := NewBundleService(transport, zap.NewNop()).UploadBundle(ctx, models.SampleBundle())
		assert.Equal(t, exceptions.KindUpstream, exceptions.KindOf(err))
		assert.Equal(t, 500, exceptions.StatusCode(err))
	})

	t.Run("Empty 2xx Body Counts As Success", func(t *testing.T) {
		response, err := NewBundleService(&fakeTransport{}, zap.NewNop()).UploadBundle(ctx, models.SampleBundle())
		require.NoError(t, err)
		assert.True(t, response.Success())
	})

	t.Run("Zero Bundle Is Rejected", func(t *testing.T) {
		transport := &fakeTransport{}
		_, err := NewBundleService(transport, zap.NewNop()).UploadBundle(ctx, models.Bundle{})
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidArgument))
		assert.Nil(t, transport.postBody)
	})
}

func TestGetBundle(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes Bundle", func(t *testing.T) {
		transport := &fakeTransport{body: `{"bundleId":"B 1","patientName":"Samyak","diagnoses":[{"code":"NAM123","description":"Sample"}]}`}
		bundle, err := NewBundleService(transport, zap.NewNop()).GetBundle(ctx, "B 1")
		require.NoError(t, err)
		assert.Equal(t, "/bundle/B%201", transport.path)
		assert.Equal(t, "B 1", bundle.ID())
		assert.Equal(t, "Samyak", bundle.PatientName())
		require.Len(t, bundle.Diagnoses(), 1)
		assert.Equal(t, "NAM123", bundle.Diagnoses()[0].Code())
	})

	t.Run("404 Is Not Found", func(t *testing.T) {
		transport := &fakeTransport{err: exceptions.ErrHTTPStatus(404, "u", nil)}
		_, err := NewBundleService(transport, zap.NewNop()).GetBundle(ctx, "missing")
		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
		assert.Equal(t, 404, exceptions.StatusCode(err))
	})

	t.Run("Invalid Payload Is A Parse Error", func(t *testing.T) {
		transport := &fakeTransport{body: `{"bundleId":"","patientName":""}`}
		_, err := NewBundleService(transport, zap.NewNop()).GetBundle(ctx, "B1")
		assert.Equal(t, exceptions.KindParse, exceptions.KindOf(err))
	})
}
