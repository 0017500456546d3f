package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// routes behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/wallets", func(r chi.Router) {
			r.Get("/", h.listWallets)
			r.Post("/", h.createWallet)

			r.Route("/{walletID}", func(r chi.Router) {
				r.Get("/", h.getWallet)
				r.Put("/", h.updateWallet)
				r.Delete("/", h.deleteWallet)

				r.Route("/assets", func(r chi.Router) {
					r.Get("/", h.listAssets)
					r.Post("/", h.createAsset)

					r.Route("/{assetID}", func(r chi.Router) {
						r.Get("/", h.getAsset)
						r.Put("/", h.updateAsset)
						r.Delete("/", h.deleteAsset)
					})
				})
			})
		})
	})

	return router
}
