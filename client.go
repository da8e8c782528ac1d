package namaste

import (
	"context"
	"fmt"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/services/auth"
	"github.com/fhirfly/namaste-sdk/internal/app/services/bundle"
	"github.com/fhirfly/namaste-sdk/internal/app/services/patients"
	"github.com/fhirfly/namaste-sdk/internal/app/services/terminology"
	"github.com/fhirfly/namaste-sdk/internal/app/services/transport"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"go.uber.org/zap"
)

const closeTimeout = 10 * time.Second

// Client is the entry point to the NAMASTE API.
type Client struct {
	log         *zap.Logger
	terminology contracts.TerminologyService
	bundles     contracts.BundleService
	patients    contracts.PatientService
	bootstrap   *config.Bootstrap
}

// New builds a client for the API at baseURL. The auth provider is asked for
// a token once, so a missing credential fails here rather than on first use.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := &clientOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.auth == nil {
		o.auth = auth.NewEnvTokenProvider(constvars.DefaultTokenEnvKey)
	}

	if _, err := o.auth.Token(context.Background()); err != nil {
		return nil, fmt.Errorf("namaste: new client: %w", err)
	}

	var t contracts.Transport = o.transport
	if t == nil {
		httpTransport, err := transport.NewHTTPTransport(transport.HTTPTransportConfig{
			BaseURL:    baseURL,
			HTTPClient: o.httpClient,
			Timeout:    o.timeout,
			UserAgent:  o.userAgent,
			Hooks:      o.hooks,
		}, o.auth, o.log)
		if err != nil {
			return nil, fmt.Errorf("namaste: new client: %w", err)
		}
		t = httpTransport
	}
	if o.ratePerSecond > 0 {
		t = transport.NewRateLimitedTransport(t, o.ratePerSecond, o.rateBurst)
	}
	if o.retryAttempts > 1 {
		t = transport.NewRetryTransport(t, o.retryAttempts, o.retryDelay, o.log)
	}

	return &Client{
		log:         o.log,
		terminology: terminology.NewTerminologyService(t, o.log),
		bundles:     bundle.NewBundleService(t, o.log),
		patients:    patients.NewPatientService(t, o.log),
	}, nil
}

// TranslateDiagnosis maps a NAMASTE code to ICD-11. Codes without a mapping
// return a result whose TargetCode is "UNKNOWN" and a nil error.
func (c *Client) TranslateDiagnosis(ctx context.Context, code string) (*MappingResult, error) {
	result, err := c.terminology.TranslateDiagnosis(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("namaste: translate %q: %w", code, err)
	}
	return result, nil
}

// UploadBundle sends bundle to the API. A rejected upload that the server
// still answered with 2xx is reported through UploadResponse.Success.
func (c *Client) UploadBundle(ctx context.Context, b Bundle) (*UploadResponse, error) {
	response, err := c.bundles.UploadBundle(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("namaste: upload bundle %q: %w", b.ID(), err)
	}
	return response, nil
}

func (c *Client) GetBundle(ctx context.Context, bundleID string) (*Bundle, error) {
	b, err := c.bundles.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, fmt.Errorf("namaste: get bundle %q: %w", bundleID, err)
	}
	return b, nil
}

func (c *Client) GetPatientByID(ctx context.Context, patientID string) (*Bundle, error) {
	patient, err := c.patients.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("namaste: get patient %q: %w", patientID, err)
	}
	return patient, nil
}

func (c *Client) ListDiagnoses(ctx context.Context) ([]Diagnosis, error) {
	diagnoses, err := c.patients.ListDiagnoses(ctx)
	if err != nil {
		return nil, fmt.Errorf("namaste: list diagnoses: %w", err)
	}
	return diagnoses, nil
}

func (c *Client) SearchTerminology(ctx context.Context, query string) ([]TerminologyResult, error) {
	results, err := c.terminology.SearchTerminology(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("namaste: search terminology %q: %w", query, err)
	}
	return results, nil
}

// Close flushes queued audit events and releases the connections opened by
// NewFromEnv. It is a no-op for
// clients built with New.
func (c *Client) Close() error {
	if c.bootstrap == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return c.bootstrap.Shutdown(ctx)
}
