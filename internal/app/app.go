// Package app assembles the storefront HTTP surface from its parts:
// public catalog and auth routes, and cart/order routes behind the
// bearer-token middleware.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"BakeShop/internal/auth"
	"BakeShop/internal/cart"
	"BakeShop/internal/catalog"
	"BakeShop/internal/order"
	"BakeShop/pkg/kit"
)

const readyTimeout = 1 * time.Second

type Deps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	JWT     *auth.TokenMaker
	Auth    *auth.Server
	Catalog *catalog.Server
	Cart    *cart.Server
	Orders  *order.Server

	// ReadyChecks are pinged by /readyz; any failure reports not ready.
	ReadyChecks []func(context.Context) error
}

func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))

		if deps.MetricsEnabled {
			r.With(kit.MetricsAuth(deps.MetricsToken)).
				Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		}
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps))

	r.Mount("/auth", deps.Auth.Routes())
	r.Mount("/products", deps.Catalog.Routes())

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireUser(deps.JWT))
		pr.Mount("/cart", deps.Cart.Routes())
		pr.Mount("/orders", deps.Orders.Routes())
	})

	return r
}

func readyz(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, check := range deps.ReadyChecks {
			if err := check(ctx); err != nil {
				if deps.Log != nil {
					deps.Log.Warn("readyz failed", zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
