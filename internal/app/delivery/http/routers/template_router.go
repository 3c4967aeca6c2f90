package routers

import (
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Templates are immutable once created.
func attachTemplateRouter(router chi.Router, middlewares *middlewares.Middlewares, templateController *controllers.TemplateController) {
	router.Get("/", templateController.FindAll)
	router.With(middlewares.BodyBuffer).Post("/", templateController.CreateTemplate)
	router.Get("/{template_id}", templateController.FindTemplateByID)
}
