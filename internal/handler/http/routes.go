package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// apiPrefix is where the API is mounted. The same routes are also served
// without the prefix.
const apiPrefix = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}

	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// set before mounting so that subrouters inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route(apiPrefix, h.routes)
	router.Group(h.routes)

	return router
}

// routes registers every endpoint on r.
func (h *Handler) routes(r chi.Router) {
	// routes without authorization
	r.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/token", h.obtainToken)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	r.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Patch("/", h.updateProfile)
		})

		r.Route("/tags", h.labelRoutes(h.services.TagService))
		r.Route("/ingredients", h.labelRoutes(h.services.IngredientService))

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.listRecipes)
			r.Post("/", h.createRecipe)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getRecipe)
				r.Put("/", h.updateRecipe)
				r.Patch("/", h.partialUpdateRecipe)
				r.Delete("/", h.deleteRecipe)
			})
		})
	})
}
