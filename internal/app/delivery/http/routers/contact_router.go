package routers

import (
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachContactRouter(router chi.Router, middlewares *middlewares.Middlewares, contactController *controllers.ContactController) {
	router.Get("/", contactController.FindAll)
	router.With(middlewares.BodyBuffer).Post("/", contactController.CreateContact)
	router.Get("/{contact_id}", contactController.FindContactByID)
	router.With(middlewares.BodyBuffer).Put("/{contact_id}", contactController.UpdateContact)
	router.Delete("/{contact_id}", contactController.DeleteContactByID)
}
