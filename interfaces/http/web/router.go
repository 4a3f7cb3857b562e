package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"benefitflow/application/services"
	"benefitflow/infrastructure/config"
	"benefitflow/interfaces/http/web/handlers"
	"benefitflow/interfaces/http/web/middleware"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/interfaces/http/web/templates"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg      *config.Config
	service  *services.AssessmentService
	registry *routes.Registry
	renderer *templates.Renderer
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *services.AssessmentService,
	registry *routes.Registry,
	renderer *templates.Renderer,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		service:  service,
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Trigger", "X-Request-ID"},
			ExposedHeaders:   []string{"HX-Trigger", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	pageHandler := handlers.NewAssessmentPageHandler(rt.service, rt.registry, rt.renderer, rt.logger)
	clickHandler := handlers.NewChartClickHandler(rt.service, rt.registry, rt.logger)
	editHandler := handlers.NewEditFormHandler(rt.service, rt.registry, rt.renderer, rt.logger)

	// Patterns are shared with the reversal registry so reversed URLs
	// always match a served route.
	router.Get(routes.PatternAssessmentPage, pageHandler.Show)
	router.Post(routes.PatternChartClick, clickHandler.HandleClick)
	router.Get(routes.PatternNodeEdit, editHandler.GetNodeForm)
	router.Get(routes.PatternLinkEdit, editHandler.GetLinkForm)
	router.Put(routes.PatternNodeUpdate, editHandler.UpdateNode)
	router.Put(routes.PatternLinkUpdate, editHandler.UpdateLink)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
