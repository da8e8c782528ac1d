package routers

import (
	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/controllers"
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// NewHandler wires the sandbox API on top of store.
func NewHandler(internalConfig *config.InternalConfig, log *zap.Logger, accessLog *logrus.Logger, store contracts.SandboxStore) (*chi.Mux, error) {
	mw, err := middlewares.NewMiddlewares(log, internalConfig)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		mw,
		accessLog,
		controllers.NewTerminologyController(log, store),
		controllers.NewBundleController(log, store),
	)
	return router, nil
}
