package main

import (
	"context"

	"product-catalog/internal/config"
	"product-catalog/internal/logging"
	"product-catalog/internal/migrate"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.LogLevel)
	log := logger.WithField("cmd", "migrate")

	if err := migrate.Apply(context.Background(), cfg.DBConnString, log); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}

	log.Info("migrations applied")
}
