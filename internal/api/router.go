package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Cheertaboi/storefront-checkout/internal/api/handlers"
	"github.com/Cheertaboi/storefront-checkout/internal/api/middleware"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
)

type Services struct {
	Carts    *service.CartService
	Checkout *service.CheckoutService
	Coupons  *service.CouponService
}

// NewRouter builds the HTTP router for the storefront
func NewRouter(svc Services) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	cartHandler := handlers.NewCartHandler(svc.Carts)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)
	couponHandler := handlers.NewCouponHandler(svc.Coupons)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handlers.ListProducts)
		r.Get("/{id}", handlers.GetProduct)
	})

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", cartHandler.CreateCart)
		r.Route("/{cartID}", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items", cartHandler.ClearCart)
			r.Put("/items/{productID}", cartHandler.UpdateItem)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
		})
	})

	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", couponHandler.ListCoupons)
		r.Post("/validate", couponHandler.ValidateCoupon)
		r.Get("/{code}", couponHandler.GetCoupon)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", checkoutHandler.Open)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", checkoutHandler.Get)
			r.Delete("/", checkoutHandler.Close)
			r.Post("/address", checkoutHandler.SubmitAddress)
			r.Post("/otp", checkoutHandler.SubmitOTP)
			r.Post("/payment-method", checkoutHandler.SelectPayment)
			r.Post("/coupon", checkoutHandler.ApplyCoupon)
			r.Post("/confirm", checkoutHandler.Confirm)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
