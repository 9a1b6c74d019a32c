package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/internal/config"
	"product-catalog/internal/db"
	"product-catalog/internal/httpserver"
	"product-catalog/internal/importer"
	"product-catalog/internal/logging"
	categoryrepo "product-catalog/internal/repository/category"
	productrepo "product-catalog/internal/repository/product"
	categorysvc "product-catalog/internal/service/category"
	productsvc "product-catalog/internal/service/product"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.LogLevel)
	log := logger.WithField("cmd", "api")

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect to db")
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, productsvc.NewFactory(productsvc.DefaultRegistry(), logger))
	categoryService := categorysvc.New(categoryrepo.NewPostgres(dbpool, logger))
	loader := importer.NewLoader(dbpool, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:  productService,
		CategorySvc: categoryService,
		Loader:      loader,
	}, cfg.AllowedOrigins)
	if err != nil {
		log.WithError(err).Fatal("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		log.WithError(err).Error("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	} else {
		log.Info("server stopped")
	}
}
