package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// server-sent events must not be buffered by the compressor
	router.Get("/api/favorites/stream", h.streamFavorites)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/api/favorites/ids", h.getFavoriteIDs)
		r.Get("/api/favorites", h.listFavorites)
		r.Get("/api/favorites/messages", h.listMessages)
		r.Get("/api/favorites/messages/cached", h.listCachedMessages)
		r.Put("/api/favorites/{id}", h.saveFavorite)
		r.Delete("/api/favorites/{id}", h.deleteFavorite)
		r.Post("/api/favorites/refresh", h.refreshFavorites)

		r.Put("/api/session", h.setSession)
		r.Delete("/api/session", h.clearSession)

		r.Get("/api/version", h.getVersion)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
