package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/reddital/reddital-be/internal/api/handlers"
	"github.com/reddital/reddital-be/internal/auth"
	"github.com/reddital/reddital-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, resolver *auth.Resolver, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.AuthenticationHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	userHandler := handlers.NewUserHandler(userService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", userHandler.Signup)
			r.Post("/login", userHandler.Login)
			r.Get("/{username}", userHandler.GetByUsername)

			// Endpoints below require a resolvable authentication key.
			r.Group(func(r chi.Router) {
				r.Use(resolver.Middleware())
				r.Get("/me", userHandler.GetMe)
				r.Put("/profile", userHandler.UpdateProfile)
				r.Put("/password", userHandler.ChangePassword)
			})
		})
	})

	return r
}
