package routers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSandboxStore struct {
	mock.Mock
}

func (m *MockSandboxStore) Translate(code string) responses.Translation {
	args := m.Called(code)
	return args.Get(0).(responses.Translation)
}

func (m *MockSandboxStore) Search(query string) []responses.TerminologyResult {
	args := m.Called(query)
	return args.Get(0).([]responses.TerminologyResult)
}

func (m *MockSandboxStore) SaveBundle(payload requests.BundlePayload) responses.Upload {
	args := m.Called(payload)
	return args.Get(0).(responses.Upload)
}

func (m *MockSandboxStore) Bundle(id string) (requests.BundlePayload, bool) {
	args := m.Called(id)
	return args.Get(0).(requests.BundlePayload), args.Bool(1)
}

func (m *MockSandboxStore) Patient(id string) (requests.BundlePayload, bool) {
	args := m.Called(id)
	return args.Get(0).(requests.BundlePayload), args.Bool(1)
}

func (m *MockSandboxStore) Diagnoses() []responses.Diagnosis {
	args := m.Called()
	return args.Get(0).([]responses.Diagnosis)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{Env: "development"},
		Sandbox: config.Sandbox{
			Timezone:  "UTC",
			JWTSecret: "jwt-secret",
			APITokens: []string{"sandbox-token"},
		},
	}
}

func newTestRouter(t *testing.T, store *MockSandboxStore) http.Handler {
	t.Helper()
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)
	router, err := NewHandler(testConfig(), zap.NewNop(), accessLog, store)
	require.NoError(t, err)
	return router
}

func doRequest(router http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", "req-test")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSandboxRoutes(t *testing.T) {
	t.Run("Health Needs No Token", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
		assert.Equal(t, "req-test", rr.Header().Get("X-Request-ID"))
	})

	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodGet, "/diagnoses", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Token Is Unauthorized", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodGet, "/diagnoses", "nope", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Signed JWT Is Accepted", func(t *testing.T) {
		store := new(MockSandboxStore)
		store.On("Diagnoses").Return([]responses.Diagnosis{{Code: "NAM123"}})
		token, err := utils.GenerateJWT("clinic-1", "jwt-secret", time.Minute)
		require.NoError(t, err)

		rr := doRequest(newTestRouter(t, store), http.MethodGet, "/diagnoses", token, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"diagnoses":[{"code":"NAM123"}]}`, rr.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("Translate", func(t *testing.T) {
		store := new(MockSandboxStore)
		found := true
		store.On("Translate", "NAM123").Return(responses.Translation{Namaste: "NAM123", ICD: "ICD11-XYZ", Message: "Mapped successfully", Found: &found})

		rr := doRequest(newTestRouter(t, store), http.MethodGet, "/translate?code=NAM123", "sandbox-token", nil)
		assert.Equal(t, http.StatusOK, rr.Code)

		var body responses.Translation
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "ICD11-XYZ", body.ICD)
		store.AssertExpectations(t)
	})

	t.Run("Translate Without Code Is Bad Request", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodGet, "/translate", "sandbox-token", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Upload Validates Payload", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodPost, "/bundle/upload", "sandbox-token", []byte(`{"bundleId":" ","patientName":"Samyak"}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "must not be blank")
	})

	t.Run("Upload Malformed JSON", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodPost, "/bundle/upload", "sandbox-token", []byte(`{`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Upload Stores Bundle", func(t *testing.T) {
		store := new(MockSandboxStore)
		store.On("SaveBundle", mock.MatchedBy(func(p requests.BundlePayload) bool {
			return p.BundleID == "BUNDLE123" && p.PatientName == "Samyak"
		})).Return(responses.Upload{Success: true, Message: "Bundle uploaded successfully"})

		rr := doRequest(newTestRouter(t, store), http.MethodPost, "/bundle/upload", "sandbox-token", []byte(`{"bundleId":"BUNDLE123","patientName":"Samyak"}`))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Bundle uploaded successfully"}`, rr.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("Unknown Bundle Is Not Found", func(t *testing.T) {
		store := new(MockSandboxStore)
		store.On("Bundle", "missing").Return(requests.BundlePayload{}, false)

		rr := doRequest(newTestRouter(t, store), http.MethodGet, "/bundle/missing", "sandbox-token", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Patient", func(t *testing.T) {
		store := new(MockSandboxStore)
		store.On("Patient", "P001").Return(requests.BundlePayload{BundleID: "BUNDLE-P001", PatientName: "Samyak"}, true)

		rr := doRequest(newTestRouter(t, store), http.MethodGet, "/patient/P001", "sandbox-token", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), `"patientName":"Samyak"`))
	})

	t.Run("Unknown Route", func(t *testing.T) {
		rr := doRequest(newTestRouter(t, new(MockSandboxStore)), http.MethodGet, "/nowhere", "sandbox-token", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
