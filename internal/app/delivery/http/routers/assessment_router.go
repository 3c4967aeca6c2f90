package routers

import (
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRouter(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Get("/", assessmentController.FindAll)
	router.With(middlewares.BodyBuffer).Post("/", assessmentController.CreateAssessment)
	router.Get("/{assessment_id}", assessmentController.FindAssessmentByID)
	router.With(middlewares.BodyBuffer).Put("/{assessment_id}", assessmentController.UpdateAssessment)
	router.Delete("/{assessment_id}", assessmentController.DeleteAssessmentByID)
	router.Get("/{assessment_id}/response", assessmentController.FindAssessmentResponse)
}
