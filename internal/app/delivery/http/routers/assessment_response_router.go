package routers

import (
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentResponseRouter(router chi.Router, middlewares *middlewares.Middlewares, assessmentResponseController *controllers.AssessmentResponseController) {
	router.Get("/", assessmentResponseController.FindAll)
	router.With(middlewares.BodyBuffer).Post("/", assessmentResponseController.CreateAssessmentResponse)
	router.Get("/{response_id}", assessmentResponseController.FindAssessmentResponseByID)
	router.With(middlewares.BodyBuffer).Put("/{response_id}", assessmentResponseController.UpdateAssessmentResponse)
	router.Post("/{response_id}/submit", assessmentResponseController.SubmitAssessmentResponse)
	router.With(middlewares.BodyBuffer).Post("/{response_id}/questions", assessmentResponseController.UpsertQuestionResponse)
	router.Get("/{response_id}/progress", assessmentResponseController.FindAssessmentResponseProgress)
}
