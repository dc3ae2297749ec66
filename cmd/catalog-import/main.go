// catalog-import loads item definitions from YAML into a catalog database.
//
// Usage:
//
//	go run ./cmd/catalog-import -items data/items.yaml -sqlite data/lootscale.db
//
//	go run ./cmd/catalog-import -items data/items.yaml -driver postgres \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user lootscale \
//	    -pg-password lootscale \
//	    -pg-database lootscale
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/loot"
)

func main() {
	itemsFile := flag.String("items", "data/items.yaml", "Path to items YAML file")
	driver := flag.String("driver", "sqlite", "Target database: sqlite or postgres")
	sqlitePath := flag.String("sqlite", "data/lootscale.db", "Path to SQLite database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "lootscale", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "lootscale", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be imported without making changes")
	flag.Parse()

	log.Println("Item Catalog Import Tool")
	log.Println("========================")

	log.Printf("Reading items: %s", *itemsFile)
	itemsConfig, err := items.LoadItemsFromYAML(*itemsFile)
	if err != nil {
		log.Fatalf("Failed to load items: %v", err)
	}
	catalog := itemsConfig.Catalog()
	list := catalog.All()

	for _, item := range list {
		log.Printf("  %-20s %-9s %-10s value %-5d item level %d",
			item.ID, item.Type, item.Rarity, item.Value, loot.ItemLevel(item))
	}

	if *dryRun {
		log.Printf("DRY RUN - %d items would be imported", len(list))
		return
	}

	cfg := database.DefaultConfig(*sqlitePath)
	cfg.Driver = *driver
	cfg.Postgres.Host = *pgHost
	cfg.Postgres.Port = *pgPort
	cfg.Postgres.User = *pgUser
	cfg.Postgres.Password = *pgPassword
	cfg.Postgres.Database = *pgDatabase
	cfg.Postgres.SSLMode = *pgSSLMode

	if cfg.Driver == string(database.DialectPostgres) {
		log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	} else {
		log.Printf("Opening SQLite database: %s", *sqlitePath)
	}
	db, err := database.OpenWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.SaveItems(ctx, list); err != nil {
		log.Fatalf("Failed to import items: %v", err)
	}

	total, err := db.CountItems(ctx)
	if err != nil {
		log.Fatalf("Failed to count items: %v", err)
	}

	log.Println("========================")
	log.Printf("Import complete! %d items written, %d in catalog", len(list), total)
}
