package api

import (
	"net/http"
	"time"

	"galactic_pets/internal/api/handler"
	"galactic_pets/internal/app/service"
	"galactic_pets/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	petService *service.PetService,
	userService *service.UserAdminService,
	uploadDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token if present and puts claims in context. Routes
	// that require auth additionally use middleware.Authenticator.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Uploaded pet images
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(apiRouter chi.Router) {
		// Registration and login (public)
		authHandler := handler.NewAuthHandler(authService)
		authHandler.RegisterRoutes(apiRouter)

		// One-time admin bootstrap (public)
		setupHandler := handler.NewSetupHandler(userService)
		setupHandler.RegisterRoutes(apiRouter)

		// Pet listings (public)
		petHandler := handler.NewPetHandler(petService)
		apiRouter.Route("/alien-pets", petHandler.RegisterRoutes)

		// Admin dashboard (admin session required)
		adminHandler := handler.NewAdminHandler(petService, userService)
		apiRouter.Route("/admin", adminHandler.RegisterRoutes)
	})

	return r
}
