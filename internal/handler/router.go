package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/real-estate-api/internal/auth"
	"github.com/vasapolrittideah/real-estate-api/internal/provider"
	"github.com/vasapolrittideah/real-estate-api/internal/usecase"
)

// NewRouter wires the HTTP routes. The auth endpoints are rate limited per
// client IP; everything mutating under /api/user and /api/listing requires a
// valid session cookie.
func NewRouter(
	logger *zerolog.Logger,
	jwtAuth auth.JWTAuthenticator,
	googleVerifier *provider.GoogleVerifier,
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
	userUsecase usecase.UserUsecase,
	listingUsecase usecase.ListingUsecase,
) *chi.Mux {
	authHandler := NewAuthHandler(authUsecase, passwordResetUsecase, googleVerifier, logger)
	userHandler := NewUserHandler(userUsecase, logger)
	listingHandler := NewListingHandler(listingUsecase, logger)

	requireAuth := RequireAuth(jwtAuth)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(httprate.LimitByIP(20, time.Minute))

			r.Post("/signup", authHandler.SignUp)
			r.Post("/signin", authHandler.SignIn)
			r.Post("/google", authHandler.GoogleSignIn)
			r.Get("/signout", authHandler.SignOut)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password/{id}/{token}", authHandler.ResetPassword)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/update/{id}", userHandler.UpdateUser)
			r.Delete("/delete/{id}", userHandler.DeleteUser)
			r.Get("/listings/{id}", userHandler.GetUserListings)
			r.Get("/{id}", userHandler.GetUser)
		})

		r.Route("/listing", func(r chi.Router) {
			r.Get("/get/{id}", listingHandler.GetListing)
			r.Get("/get", listingHandler.SearchListings)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)

				r.Post("/create", listingHandler.CreateListing)
				r.Post("/update/{id}", listingHandler.UpdateListing)
				r.Delete("/delete/{id}", listingHandler.DeleteListing)
			})
		})
	})

	return r
}
