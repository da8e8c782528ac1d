package controllers

import (
	"net/http"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/requests"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBundleBodyBytes = 1 << 20

type BundleController struct {
	Log   *zap.Logger
	Store contracts.SandboxStore
}

func NewBundleController(logger *zap.Logger, store contracts.SandboxStore) *BundleController {
	return &BundleController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *BundleController) UploadBundle(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var request requests.BundlePayload
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBundleBodyBytes)).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response := ctrl.Store.SaveBundle(request)
	ctrl.Log.Info("BundleController.UploadBundle processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, request.BundleID),
		zap.Bool(constvars.LoggingSuccessKey, response.Success),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *BundleController) GetBundle(w http.ResponseWriter, r *http.Request) {
	bundleID := chi.URLParam(r, constvars.URLParamID)
	bundle, ok := ctrl.Store.Bundle(bundleID)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotFound(nil, constvars.ResourceBundle))
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, bundle)
}

func (ctrl *BundleController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamID)
	patient, ok := ctrl.Store.Patient(patientID)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotFound(nil, constvars.ResourcePatient))
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *BundleController) ListDiagnoses(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.DiagnosisList{Diagnoses: ctrl.Store.Diagnoses()})
}
