package bundle

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bundleService struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewBundleService(transport contracts.Transport, logger *zap.Logger) contracts.BundleService {
	return &bundleService{
		Transport: transport,
		Log:       logger,
	}
}

// UploadBundle posts bundle to the upload endpoint. A non-2xx answer is an
// error; a 2xx answer reporting success=false is returned as-is.
func (s *bundleService) UploadBundle(ctx context.Context, bundle models.Bundle) (*models.UploadResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("bundleService.UploadBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, bundle.ID()),
	)

	if strings.TrimSpace(bundle.ID()) == "" {
		return nil, exceptions.ErrInvalidArgument("bundle id")
	}

	payload, err := json.Marshal(utils.BuildBundlePayload(bundle))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := s.Transport.Post(ctx, constvars.EndpointBundleUpload, payload)
	if err != nil {
		return nil, exceptions.ErrUpstream(err, constvars.ResourceUploadResponse)
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return models.NewUploadResponse(true, constvars.BundleUploadedMessage), nil
	}

	var response responses.Upload
	if err := json.Unmarshal(body, &response); err != nil {
		s.Log.Error("bundleService.UploadBundle error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUploadResponse)
	}

	if !response.Success {
		s.Log.Warn("bundleService.UploadBundle rejected by upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBundleIDKey, bundle.ID()),
			zap.String(constvars.LoggingMessageKey, response.Message),
		)
	}
	return models.NewUploadResponse(response.Success, response.Message), nil
}

func (s *bundleService) GetBundle(ctx context.Context, bundleID string) (*models.Bundle, error) {
	if strings.TrimSpace(bundleID) == "" {
		return nil, exceptions.ErrInvalidArgument("bundle id")
	}

	path := fmt.Sprintf("%s/%s", constvars.EndpointBundle, url.PathEscape(bundleID))
	return FetchBundle(ctx, s.Transport, path, constvars.ResourceBundle)
}

// FetchBundle GETs path and decodes the bundle payload it returns. A 404 is
// reported as a not found error.
func FetchBundle(ctx context.Context, transport contracts.Transport, path, resource string) (*models.Bundle, error) {
	body, err := transport.Get(ctx, path)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindHTTP) && exceptions.StatusCode(err) == constvars.StatusNotFound {
			return nil, exceptions.ErrNotFound(err, resource)
		}
		return nil, exceptions.ErrUpstream(err, resource)
	}

	var payload requests.BundlePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}

	bundle, err := utils.BuildBundleFromPayload(&payload)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}
	return &bundle, nil
}
