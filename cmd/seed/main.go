package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/database"

	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "", "YAML catalog to load instead of the built-in sample")
	flag.Parse()

	fmt.Println("🌱 Starting Bandacious catalog seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var source catalog.Source = catalog.BuiltinSource{}
	if *file != "" {
		source = catalog.FileSource{Path: *file}
	}

	c, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load %s catalog: %v", source.Name(), err)
	}

	db, err := database.OpenPostgreSQL(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fmt.Println("\n🧹 Replacing catalog tables...")
	if err := catalog.NewRepository(db).ReplaceAll(ctx, c); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	stats := c.Stats()
	fmt.Printf("✅ Seeded %d venues, %d artists and %d events (version %s)\n",
		stats.Venues, stats.Artists, stats.Events, c.Version())
	fmt.Println("\n🎉 Seeding completed! Set CATALOG_SOURCE=postgres to serve it.")
}
