package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/shared/auth"
)

// Handlers bundles the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Product    *ProductHandler
	Order      *OrderHandler
	Newsletter *NewsletterHandler
}

// NewRouter builds the API route table. Every /api route passes through
// the injection guard; protected groups additionally resolve the bearer
// token to a verified actor.
func NewRouter(
	h Handlers,
	jwtAuth *auth.JWTAuthenticator,
	userRepo repository.UserRepository,
	logger *zerolog.Logger,
) http.Handler {
	authenticate := Authenticate(jwtAuth, userRepo)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(InjectionGuard(logger))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeMessage(w, http.StatusOK, "ok")
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/verify", h.Auth.Verify)
			r.Post("/forgotpassword", h.Auth.ForgotPassword)
			r.Put("/resetpassword/{token}", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/profile", h.User.GetProfile)
				r.Put("/profile", h.User.UpdateProfile)
				r.Get("/wishlist", h.User.GetWishlist)
				r.Post("/wishlist", h.User.AddToWishlist)
				r.Delete("/wishlist/{id}", h.User.RemoveFromWishlist)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticate, RequireAdmin)
				r.Get("/", h.User.ListUsers)
				r.Delete("/{id}", h.User.DeleteUser)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.Search)
			r.Get("/top", h.Product.Top)
			r.Get("/suggestions", h.Product.Suggestions)
			r.Get("/{id}", h.Product.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/{id}/reviews", h.Product.CreateReview)
				r.Put("/{id}/reviews", h.Product.UpdateReview)
				r.Delete("/{id}/reviews", h.Product.DeleteReview)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticate, RequireAdmin)
				r.Post("/", h.Product.Create)
				r.Put("/{id}", h.Product.Update)
				r.Delete("/{id}", h.Product.Delete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", h.Order.Create)
				r.Get("/myorders", h.Order.ListMine)
				r.Get("/{id}", h.Order.Get)
				r.Put("/{id}/pay", h.Order.Pay)
				r.Delete("/{id}", h.Order.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticate, RequireAdmin)
				r.Get("/", h.Order.ListAll)
				r.Get("/summary", h.Order.Summary)
				r.Get("/user/{userId}", h.Order.ListByUser)
				r.Put("/{id}/deliver", h.Order.Deliver)
			})
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.Post("/", h.Newsletter.Subscribe)

			r.Group(func(r chi.Router) {
				r.Use(authenticate, RequireAdmin)
				r.Get("/", h.Newsletter.ListSubscribers)
			})
		})

		r.Post("/contact", h.Newsletter.Contact)
	})

	return r
}
