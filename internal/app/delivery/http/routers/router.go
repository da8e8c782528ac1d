package routers

import (
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/controllers"
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/middlewares"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	terminologyController *controllers.TerminologyController,
	bundleController *controllers.BundleController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.Sandbox.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.Sandbox.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger(internalConfig.Sandbox, accessLog))
	router.Use(middlewares.ErrorHandler)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	router.Get(constvars.EndpointHealth, terminologyController.Health)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		attachTerminologyRoutes(r, terminologyController)
		attachBundleRoutes(r, bundleController)
	})
}
