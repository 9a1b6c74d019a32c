package main

import (
	"context"

	"product-catalog/internal/config"
	"product-catalog/internal/db"
	"product-catalog/internal/logging"
	"product-catalog/internal/seed"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.LogLevel).WithField("cmd", "seed")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		log.WithError(err).Fatal("seed apply")
	}

	log.Info("seed applied")
}
