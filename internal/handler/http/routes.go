package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// compressionLevel is the gzip/deflate level used for JSON responses.
const compressionLevel = 5

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 300

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	if len(h.corsOrigins) > 0 {
		router.Use(h.cors())
	}
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
		r.Get("/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/home/summary", h.getSummary)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.createCategory)
				r.Get("/{id}", h.getCategory)
				r.Put("/{id}", h.updateCategory)
				r.Delete("/{id}", h.deleteCategory)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.listContacts)
				r.Post("/", h.createContact)
				r.Get("/{id}", h.getContact)
				r.Put("/{id}", h.updateContact)
				r.Delete("/{id}", h.deleteContact)
			})
		})
	})

	return router
}

// cors answers preflight requests and exposes the headers the web client
// reads: the issued token and the trace id.
func (h *Handler) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         corsMaxAge,
	})
}
