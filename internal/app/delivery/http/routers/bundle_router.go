package routers

import (
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/controllers"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
)

func attachBundleRoutes(router chi.Router, bundleController *controllers.BundleController) {
	router.Post(constvars.EndpointBundleUpload, bundleController.UploadBundle)
	router.Get(constvars.EndpointBundle+"/{id}", bundleController.GetBundle)
	router.Get(constvars.EndpointPatient+"/{id}", bundleController.GetPatient)
	router.Get(constvars.EndpointDiagnoses, bundleController.ListDiagnoses)
}
