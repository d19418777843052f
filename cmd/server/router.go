package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"contacts-api/internal/api"
	apiMiddleware "contacts-api/internal/api/middleware"
	"contacts-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware chains.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware, applied to every route.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics(app.collector))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwords,
		app.passwords,
		app.verification,
		app.avatars,
	)
	contactHandler := api.NewContactHandler(app.contactStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)
	validContactID := apiMiddleware.RequireObjectID("contactID")

	r.Route("/api", func(r chi.Router) {
		// Account lifecycle endpoints (public).
		r.Post("/auth/register", authHandler.Register)
		r.Get("/auth/verify/{verificationToken}", authHandler.VerifyToken)
		r.Post("/auth/verify", authHandler.ResendVerifyEmail)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/current", authHandler.GetCurrent)
			r.Post("/auth/logout", authHandler.Logout)
			r.Patch("/auth/avatars", authHandler.UpdateAvatar)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", contactHandler.List)
				r.Post("/", contactHandler.Create)

				r.Route("/{contactID}", func(r chi.Router) {
					r.Use(validContactID)

					r.Get("/", contactHandler.GetByID)
					r.Put("/", contactHandler.Update)
					r.Delete("/", contactHandler.Delete)
					r.Patch("/favorite", contactHandler.UpdateFavorite)
				})
			})
		})
	})

	// Operational endpoints.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	return r
}
