package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/config"
	"github.com/dataproducts-io/catalog/pkg/database/migrations"
	catalogMiddleware "github.com/dataproducts-io/catalog/pkg/http/middleware"
	"github.com/dataproducts-io/catalog/pkg/http/routers/dataproducts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	zc := zap.NewDevelopmentConfig()
	z, err := zc.Build()
	if err != nil {
		panic(fmt.Sprintf("error building logger: %v", err))
	}
	log := zapr.NewLogger(z)

	cfg := config.Load()

	// TranslateError so unique index violations surface as gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Error(err, "error opening database connection")
		os.Exit(1)
	}

	log.Info("Running database migrations")
	if err = migrations.RunMigrations(db); err != nil {
		log.Error(err, "error running database migrations")
		os.Exit(1)
	}
	log.Info("Done running database migrations")

	service := catalog.NewService(catalog.NewGormStore(db))

	if cfg.Seed {
		if err := catalog.Seed(context.Background(), service, log); err != nil {
			log.Error(err, "error seeding sample data products")
			os.Exit(1)
		}
	}

	r := chi.NewRouter()
	r.Use(catalogMiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Heartbeat("/ping"))

	r.Use(middleware.AllowContentType("application/json"))

	r.Mount("/data-products", dataproducts.NewRouter(service))

	log.Info("Listening for requests", "addr", cfg.ListenAddr)
	http.ListenAndServe(cfg.ListenAddr, r)
}
