package http

import (
	"github.com/boardhive/jobboard/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/", h.docs)
		r.Delete("/logout", h.logout)
		r.Get("/files/{key}", h.downloadFile)

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.signUp(models.AccountKindUser))
			r.Get("/register/{accountID}", h.activate)
			r.Post("/login", h.signIn(models.AccountKindUser))

			r.Group(func(r chi.Router) {
				r.Use(h.auth(models.AccountKindUser))
				r.Use(h.activeCheck)
				r.Get("/session", h.session)
				r.Patch("/", h.updateSelf)
				r.Delete("/", h.destroySelf)
			})
		})

		r.Route("/companies", func(r chi.Router) {
			r.Post("/register", h.signUp(models.AccountKindCompany))
			r.Get("/register/{accountID}", h.activate)
			r.Post("/login", h.signIn(models.AccountKindCompany))

			r.Group(func(r chi.Router) {
				r.Use(h.auth(models.AccountKindCompany))
				r.Get("/session", h.session)
				r.Patch("/", h.updateSelf)
				r.Delete("/", h.destroySelf)
			})
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", h.listPublicListings)

			r.Group(func(r chi.Router) {
				r.Use(h.auth(models.AccountKindCompany))
				r.Use(h.activeCheck)
				r.Post("/", h.createListing)
				r.Get("/own", h.getOwnListings)
				r.Patch("/{listingID}", h.updateOwnListing)
				r.Delete("/{listingID}", h.destroyOwnListing)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.signIn(models.AccountKindAdmin))

			r.Group(func(r chi.Router) {
				r.Use(h.auth(models.AccountKindAdmin))
				r.Get("/session", h.session)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.listAccounts(models.AccountKindUser))
					r.Get("/{accountID}", h.getAccount(models.AccountKindUser))
					r.Patch("/{accountID}", h.updateAccount(models.AccountKindUser))
					r.Delete("/{accountID}", h.destroyAccount(models.AccountKindUser))
				})

				r.Route("/companies", func(r chi.Router) {
					r.Get("/", h.listAccounts(models.AccountKindCompany))
					r.Get("/{accountID}", h.getAccount(models.AccountKindCompany))
					r.Patch("/{accountID}", h.updateAccount(models.AccountKindCompany))
					r.Delete("/{accountID}", h.destroyAccount(models.AccountKindCompany))
				})

				r.Patch("/listings/{listingID}", h.adminUpdateListing)
				r.Delete("/listings/{listingID}", h.adminDestroyListing)
			})
		})
	})

	return router
}
