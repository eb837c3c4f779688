package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"BakeShop/internal/app"
	"BakeShop/internal/auth"
	"BakeShop/internal/cart"
	"BakeShop/internal/catalog"
	"BakeShop/internal/order"
	"BakeShop/pkg/kit"
)

func main() {
	service := "bakeshop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if len(jwtSecret) < 32 {
		log.Fatal("JWT_SECRET is required and must be at least 32 chars")
	}

	var ready []func(context.Context) error

	// Durable backends are optional: without DATABASE_URL / REDIS_ADDR
	// the service runs fully in memory, which is what dev and the test
	// suite use.
	var userStore auth.UserStore = auth.NewMemStore()
	var orderStore order.Store = order.NewMemStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatal("open postgres", zap.Error(err))
		}
		userStore = auth.NewPostgresStore(db)
		pg := order.NewPostgresStore(db)
		orderStore = pg
		ready = append(ready, pg.Ping)
	}

	var cartSlot cart.Slot = cart.NewMemSlot()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rs := cart.NewRedisSlot(redis.NewClient(&redis.Options{Addr: addr}))
		cartSlot = rs
		ready = append(ready, rs.Ping)
	}

	jwt := auth.NewTokenMaker(jwtSecret)
	catalogStore := catalog.NewStore()
	cartSvc := cart.NewService(cartSlot, catalogStore, log)
	orderSvc := order.NewService(orderStore, cartSvc, catalogStore, log)

	h := app.NewHandler(app.Deps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),

		JWT:     jwt,
		Auth:    &auth.Server{Log: log, Store: userStore, JWT: jwt},
		Catalog: &catalog.Server{Store: catalogStore},
		Cart:    &cart.Server{Svc: cartSvc, Log: log},
		Orders:  &order.Server{Svc: orderSvc, Log: log},

		ReadyChecks: ready,
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
