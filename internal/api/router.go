package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sellfurniture/marketplace-be/internal/api/handlers"
	"github.com/sellfurniture/marketplace-be/internal/auth"
	"github.com/sellfurniture/marketplace-be/internal/services"
)

// Options configures router behaviour that drifted across deployments.
type Options struct {
	// AllowAnonymousLocations opens POST /api/locations to
	// unauthenticated callers.
	AllowAnonymousLocations bool
}

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	locationService services.LocationServiceProvider,
	itemService services.ItemServiceProvider,
	visitService services.VisitServiceProvider,
	opts Options,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The frontend is served from a separate origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	locationHandler := handlers.NewLocationHandler(locationService)
	itemHandler := handlers.NewItemHandler(itemService)
	visitHandler := handlers.NewVisitHandler(visitService)

	requireAuth := tokens.Middleware()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(requireAuth).Get("/me", authHandler.Me)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/locations", locationHandler.GetAll)
		if opts.AllowAnonymousLocations {
			r.Post("/locations", locationHandler.Create)
		} else {
			r.With(requireAuth).Post("/locations", locationHandler.Create)
		}

		r.Get("/items", itemHandler.GetAll)
		r.With(requireAuth).Post("/items", itemHandler.Create)
		r.Get("/totalNumber", itemHandler.Count)
		r.Get("/search", itemHandler.Search)

		r.Post("/visit", visitHandler.Record)
	})

	return r
}
