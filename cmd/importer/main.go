package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/db"
	"product-catalog/internal/importer"
	"product-catalog/internal/logging"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "data.json", "Path to the catalog JSON export")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.LogLevel)
	log := logger.WithField("cmd", "importer")

	f, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Fatal("open file")
	}
	defer f.Close()

	doc, err := importer.Decode(f)
	if err != nil {
		report(map[string]string{"error": err.Error()})
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	start := time.Now()
	res, err := importer.NewLoader(pool, logger).Load(ctx, doc)
	if err != nil {
		report(map[string]string{"error": err.Error()})
		pool.Close()
		os.Exit(1)
	}

	log.WithField("elapsed", time.Since(start).Truncate(time.Millisecond).String()).
		Infof("imported %d categories and %d products", res.InsertedCategories, res.InsertedProducts)
	report(map[string]string{"message": "Data inserted successfully!"})
}

func report(v map[string]string) {
	out, _ := json.Marshal(v)
	fmt.Println(string(out))
}
