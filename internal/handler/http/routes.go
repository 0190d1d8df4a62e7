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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Delete("/api/auth/me", h.deleteCurrentUser)

		r.Get("/api/contacts/", h.listContacts)
		r.Post("/api/contacts/", h.createContact)
		r.Get("/api/contacts/find/{id}", h.findContact)
		r.Get("/api/contacts/search", h.searchContacts)
		r.Get("/api/contacts/upcoming-birthdays", h.upcomingBirthdays)
		r.Patch("/api/contacts/{id}", h.updateContact)
		r.Delete("/api/contacts/{id}", h.deleteContact)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
