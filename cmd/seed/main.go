package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/opencustoms/tariff/internal/config"
	"github.com/opencustoms/tariff/internal/database"
	"github.com/opencustoms/tariff/internal/seed"
)

func main() {
	verifyOnly := flag.Bool("verify", false, "report table counts and data quality instead of seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if *verifyOnly {
		reports, err := seed.Verify(db)
		if err != nil {
			log.Fatalf("verification failed: %v", err)
		}
		seed.PrintReport(os.Stdout, reports)
		return
	}

	if err := seed.Load(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	slog.Info("seeding complete")
}
