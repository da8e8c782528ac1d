package patients

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/models"
	"github.com/fhirfly/namaste-sdk/internal/app/services/bundle"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientService struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewPatientService(transport contracts.Transport, logger *zap.Logger) contracts.PatientService {
	return &patientService{
		Transport: transport,
		Log:       logger,
	}
}

// GetPatientByID returns the patient's bundle of diagnoses.
func (s *patientService) GetPatientByID(ctx context.Context, patientID string) (*models.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("patientService.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if strings.TrimSpace(patientID) == "" {
		return nil, exceptions.ErrInvalidArgument("patient id")
	}

	path := fmt.Sprintf("%s/%s", constvars.EndpointPatient, url.PathEscape(patientID))
	return bundle.FetchBundle(ctx, s.Transport, path, constvars.ResourcePatient)
}

func (s *patientService) ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := s.Transport.Get(ctx, constvars.EndpointDiagnoses)
	if err != nil {
		return nil, exceptions.ErrUpstream(err, constvars.ResourceDiagnosis)
	}

	var response responses.DiagnosisList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDiagnosis)
	}

	diagnoses, err := utils.BuildDiagnosesFromResponse(&response)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDiagnosis)
	}

	s.Log.Debug("patientService.ListDiagnoses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(diagnoses)),
	)
	return diagnoses, nil
}
