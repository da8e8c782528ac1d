package controllers

import (
	"net/http"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/dto/responses"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"go.uber.org/zap"
)

type TerminologyController struct {
	Log   *zap.Logger
	Store contracts.SandboxStore
}

func NewTerminologyController(logger *zap.Logger, store contracts.SandboxStore) *TerminologyController {
	return &TerminologyController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *TerminologyController) Translate(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamCode))
	if code == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidArgument(constvars.QueryParamCode))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, ctrl.Store.Translate(code))
}

func (ctrl *TerminologyController) Search(w http.ResponseWriter, r *http.Request) {
	results := ctrl.Store.Search(r.URL.Query().Get(constvars.QueryParamQuery))
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.TerminologySearch{Results: results})
}

func (ctrl *TerminologyController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{Status: constvars.HealthStatusOK})
}
