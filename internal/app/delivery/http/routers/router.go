package routers

import (
	"strings"

	"brm-service/internal/app/config"
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"
	"brm-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Account            *controllers.AccountController
	Contact            *controllers.ContactController
	Template           *controllers.TemplateController
	Assessment         *controllers.AssessmentController
	AssessmentResponse *controllers.AssessmentResponseController
	Health             *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	allowedOrigins := internalConfig.App.CorsAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderContentType,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())

	endpointPrefix := normalizePrefix(internalConfig.App.EndpointPrefix)

	// Must be registered before the API sub-router is mounted so it inherits it.
	if internalConfig.App.StaticDir != "" {
		router.NotFound(staticHandler(internalConfig.App.StaticDir, endpointPrefix, middlewares.NotFound))
	} else {
		router.NotFound(middlewares.NotFound)
	}

	router.Get("/healthz", controllers.Health.Health)

	attachAPI := func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			attachAccountRouter(r, middlewares, controllers.Account)
		})

		r.Route("/contacts", func(r chi.Router) {
			attachContactRouter(r, middlewares, controllers.Contact)
		})

		r.Route("/templates", func(r chi.Router) {
			attachTemplateRouter(r, middlewares, controllers.Template)
		})

		r.Route("/assessments", func(r chi.Router) {
			attachAssessmentRouter(r, middlewares, controllers.Assessment)
		})

		r.Route("/responses", func(r chi.Router) {
			attachAssessmentResponseRouter(r, middlewares, controllers.AssessmentResponse)
		})
	}

	if endpointPrefix == "" {
		router.Group(attachAPI)
		return
	}
	router.Route(endpointPrefix, attachAPI)
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api", and "/" into "".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
