package routers

import (
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/controllers"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
)

func attachTerminologyRoutes(router chi.Router, terminologyController *controllers.TerminologyController) {
	router.Get(constvars.EndpointTranslate, terminologyController.Translate)
	router.Get(constvars.EndpointTerminologySearch, terminologyController.Search)
}
