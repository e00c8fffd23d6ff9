package main

import (
	"flag"
	"log"

	"github.com/monlivredecuisine/backend/config"
	"github.com/monlivredecuisine/backend/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *migrationsDir != "" {
		cfg.MigrationsDir = *migrationsDir
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations applied")
}
