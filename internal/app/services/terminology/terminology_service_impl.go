package terminology

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type terminologyService struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewTerminologyService(transport contracts.Transport, logger *zap.Logger) contracts.TerminologyService {
	return &terminologyService{
		Transport: transport,
		Log:       logger,
	}
}

// TranslateDiagnosis maps a NAMASTE code to ICD-11. A code the upstream does
// not know yields an UNKNOWN result rather than an error.
func (s *terminologyService) TranslateDiagnosis(ctx context.Context, code string) (*models.MappingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("terminologyService.TranslateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceCodeKey, code),
	)

	if strings.TrimSpace(code) == "" {
		return nil, exceptions.ErrInvalidArgument("code")
	}

	path := fmt.Sprintf("%s?%s=%s", constvars.EndpointTranslate, constvars.QueryParamCode, url.QueryEscape(code))
	body, err := s.Transport.Get(ctx, path)
	if err != nil {
		if isUnmappedNotFound(err) {
			return models.NewUnmappedResult(code), nil
		}
		return nil, exceptions.ErrUpstream(err, constvars.ResourceMapping)
	}

	var response responses.Translation
	if err := json.Unmarshal(body, &response); err != nil {
		s.Log.Error("terminologyService.TranslateDiagnosis error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMapping)
	}

	targetCode := strings.TrimSpace(response.ICD)
	if targetCode == "" || strings.EqualFold(targetCode, constvars.TargetCodeUnknown) || (response.Found != nil && !*response.Found) {
		return models.NewUnmappedResult(code), nil
	}

	message := response.Message
	if message == "" {
		message = constvars.MappingFoundMessage
	}
	equivalence := response.Equivalence
	if equivalence == "" {
		equivalence = constvars.EquivalenceEquivalent
	}

	result, err := models.NewMappingResult(code, targetCode, message, equivalence)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMapping)
	}

	s.Log.Debug("terminologyService.TranslateDiagnosis succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceCodeKey, code),
		zap.String(constvars.LoggingTargetCodeKey, targetCode),
	)
	return result, nil
}

// SearchTerminology returns the NAMASTE terms matching query. A blank query
// matches nothing and is answered without a request.
func (s *terminologyService) SearchTerminology(ctx context.Context, query string) ([]models.TerminologyResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.TerminologyResult{}, nil
	}

	path := fmt.Sprintf("%s?%s=%s", constvars.EndpointTerminologySearch, constvars.QueryParamQuery, url.QueryEscape(query))
	body, err := s.Transport.Get(ctx, path)
	if err != nil {
		return nil, exceptions.ErrUpstream(err, constvars.ResourceTerminologyResult)
	}

	var response responses.TerminologySearch
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTerminologyResult)
	}

	results := utils.BuildTerminologyResults(&response)
	s.Log.Debug("terminologyService.SearchTerminology succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
		zap.Int(constvars.LoggingResponseCountKey, len(results)),
	)
	return results, nil
}

// isUnmappedNotFound reports whether err is a 404 whose body is a translation
// answer. A 404 from a wrong base URL or a proxy is a real failure.
func isUnmappedNotFound(err error) bool {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) || customErr.Kind != exceptions.KindHTTP || customErr.StatusCode != constvars.StatusNotFound {
		return false
	}
	if !gjson.ValidBytes(customErr.Body) {
		return false
	}
	if found := gjson.GetBytes(customErr.Body, "found"); found.Type == gjson.False {
		return true
	}
	icd := gjson.GetBytes(customErr.Body, "icd")
	return icd.Type == gjson.String && strings.EqualFold(icd.Str, constvars.TargetCodeUnknown)
}
