package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/forgetting-curve/api/internal/api"
	apimiddleware "github.com/forgetting-curve/api/internal/api/middleware"
	"github.com/forgetting-curve/api/internal/service"
)

// setupRouter builds the application router with all middleware and routes.
func setupRouter(
	userService service.UserService,
	informationService service.InformationService,
	resetSchema api.SchemaResetter,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	userHandler := api.NewUserHandler(userService)
	informationHandler := api.NewInformationHandler(informationService)
	maintenanceHandler := api.NewMaintenanceHandler(resetSchema)

	r.Post("/setup_database", maintenanceHandler.SetupDatabase)
	r.Get("/health", maintenanceHandler.Health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)

		r.Route("/{nickname}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/", userHandler.UpdateUser)
			r.Delete("/", userHandler.DeleteUser)

			r.Route("/information", func(r chi.Router) {
				r.Post("/", informationHandler.CreateInformation)
				r.Get("/", informationHandler.ListInformation)
				r.Delete("/{id}", informationHandler.DeleteInformation)
			})
		})
	})

	return r
}
