package routers

import (
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAccountRouter(router chi.Router, middlewares *middlewares.Middlewares, accountController *controllers.AccountController) {
	router.Get("/", accountController.FindAll)
	router.With(middlewares.BodyBuffer).Post("/", accountController.CreateAccount)
	router.Get("/{account_id}", accountController.FindAccountByID)
	router.With(middlewares.BodyBuffer).Put("/{account_id}", accountController.UpdateAccount)
	router.Delete("/{account_id}", accountController.DeleteAccountByID)
	router.Get("/{account_id}/contacts", accountController.FindContactsByAccountID)
	router.Get("/{account_id}/assessments", accountController.FindAssessmentsByAccountID)
}
