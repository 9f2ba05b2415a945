package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trinhquocthinh/foodhub/api/controllers"
	"github.com/trinhquocthinh/foodhub/api/middleware"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	checkoutsvc "github.com/trinhquocthinh/foodhub/internal/checkout"
	"github.com/trinhquocthinh/foodhub/internal/sessions"
	"github.com/trinhquocthinh/foodhub/pkg/config"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
)

// RouterParams collects everything the HTTP surface depends on. Nothing
// is pulled from ambient globals; the caller wires each dependency.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	Catalog         *catalog.Store
	Sessions        *sessions.Registry
	Checkout        *checkoutsvc.Service
	MetricsRegistry *prometheus.Registry

	// Storage dependencies for readiness, keyed by name. Only the
	// backends the deployment actually uses are present.
	HealthDeps map[string]controllers.Pinger
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.HealthDeps))
	})

	if params.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
			params.MetricsRegistry,
			promhttp.HandlerOpts{},
		))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/menu", controllers.MenuList(params.Catalog, logg))
		r.Get("/products", controllers.ProductList(params.Catalog, logg))
		r.Get("/services", controllers.ServiceList(params.Catalog, logg))
		r.Get("/testimonials", controllers.TestimonialList(params.Catalog, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionContext(logg))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(params.Sessions, logg))
			r.Post("/items", controllers.CartAddItem(params.Sessions, params.Catalog, logg))
			r.Post("/items/{itemId}/increment", controllers.CartIncrementItem(params.Sessions, logg))
			r.Post("/items/{itemId}/decrement", controllers.CartDecrementItem(params.Sessions, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(params.Sessions, logg))
			r.Get("/notification", controllers.CartNotificationFetch(params.Sessions, logg))
			r.Delete("/notification", controllers.CartNotificationClear(params.Sessions, logg))
		})

		r.Route("/api/v1/checkout", func(r chi.Router) {
			r.Get("/quote", controllers.CheckoutQuote(params.Sessions, params.Checkout, logg))
			r.Post("/orders", controllers.CheckoutSubmit(params.Sessions, params.Checkout, logg))
		})
	})

	return r
}
