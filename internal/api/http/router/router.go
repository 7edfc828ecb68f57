package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/storytrails-server/internal/api/http/handler"
	"github.com/dtroode/storytrails-server/internal/api/http/middleware"
	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// Services groups the business services served over HTTP.
type Services struct {
	Books       handler.BookService
	Collections handler.CollectionService
	Users       handler.UserService
	Tokens      middleware.TokenService
	Health      handler.HealthChecker
}

// Options configures optional router behaviour.
type Options struct {
	ErrorMode   string
	CORSOrigins []string
	// Limiter throttles clients by IP; nil disables rate limiting.
	Limiter middleware.Limiter
	// CoversEnabled mounts the cover image routes.
	CoversEnabled bool
	MaxCoverBytes int64
}

// Router builds the HTTP handler tree for the reading tracker API.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register mounts all routes and middleware and returns the root handler.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	origins := r.options.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.NewRecovery(r.logger).Handle,
		middleware.NewLogging(r.logger).Handle,
		middleware.Metrics,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.TokenHeader},
			MaxAge:         300,
		}),
	)
	if r.options.Limiter != nil {
		mux.Use(middleware.RateLimit(r.options.Limiter))
	}

	errs := handler.NewErrorMapper(r.options.ErrorMode, r.logger)

	mux.Get("/health", handler.NewHealth(r.services.Health, r.logger).Check)
	mux.Handle("/metrics", promhttp.Handler())

	r.registerUserRoutes(mux, errs)

	mux.Group(func(protected chi.Router) {
		protected.Use(middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger).Handle)
		r.registerBookRoutes(protected, errs)
		r.registerCollectionRoutes(protected, errs)
	})

	return mux
}

func (r *Router) registerUserRoutes(mux chi.Router, errs *handler.ErrorMapper) {
	h := handler.NewUser(r.services.Users, errs, r.logger)
	mux.Post("/users", h.Register)
	mux.Post("/login", h.Login)
}

func (r *Router) registerBookRoutes(mux chi.Router, errs *handler.ErrorMapper) {
	h := handler.NewBook(r.services.Books, r.contextManager, errs, r.options.MaxCoverBytes, r.logger)

	mux.Route("/books", func(books chi.Router) {
		books.Post("/", h.Create)
		books.Get("/", h.List)
		books.Get("/collection/{id}", h.ListByCollection)
		books.Get("/{id}", h.Get)
		books.Patch("/{id}", h.Update)
		books.Delete("/{id}", h.Delete)

		if r.options.CoversEnabled {
			books.Put("/{id}/cover", h.UploadCover)
			books.Get("/{id}/cover", h.GetCover)
		}
	})
}

func (r *Router) registerCollectionRoutes(mux chi.Router, errs *handler.ErrorMapper) {
	h := handler.NewCollection(r.services.Collections, r.contextManager, errs, r.logger)

	mux.Route("/collections", func(collections chi.Router) {
		collections.Post("/", h.Create)
		collections.Get("/", h.List)
		collections.Get("/{id}", h.Get)
		collections.Patch("/{id}", h.Update)
		collections.Delete("/{id}", h.Delete)
	})
}
