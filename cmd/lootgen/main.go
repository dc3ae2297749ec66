// lootgen prints the scaled loot table for one object, optionally rolling it.
//
// Usage:
//
//	go run ./cmd/lootgen -level 20 -depth 50 -category chest -roll -seed 7
//	go run ./cmd/lootgen -category crate -curve
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lawnchairsociety/lootscale/internal/config"
	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/logger"
	"github.com/lawnchairsociety/lootscale/internal/loot"
	"github.com/lawnchairsociety/lootscale/internal/reward"
)

func main() {
	configFile := flag.String("config", "data/lootscale.yaml", "Path to lootscale config YAML file")
	level := flag.Int("level", 1, "Player level")
	depth := flag.Int("depth", 0, "Area depth (0 = overworld)")
	categoryName := flag.String("category", "chest", "Object category: pot, crate, barrel or chest")
	roll := flag.Bool("roll", false, "Roll the table once and print the reward")
	seed := flag.Int64("seed", 0, "Seed for -roll (default: random based on current time)")
	curve := flag.Bool("curve", false, "Print gold and XP for levels 1-100 instead of a single table")
	itemsFile := flag.String("items", "", "Path to items YAML file (overrides config)")
	dbFile := flag.String("db", "", "Path to SQLite catalog database (overrides config)")
	itemQuery := flag.String("item", "", "Describe one item (ID or partial name) instead of printing a table")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Tables go to stdout; only warnings are logged unless LOG_LEVEL says otherwise
	cfg.Logging.FileEnabled = false
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Logging.Level = "WARNING"
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	category, err := loot.ParseObjectCategory(*categoryName)
	if err != nil {
		log.Fatalf("Invalid -category: %v", err)
	}

	if *curve {
		printCurve(os.Stdout, category, *depth)
		return
	}

	switch {
	case *dbFile != "":
		cfg.Catalog.Source = config.CatalogSourceDatabase
		cfg.Database = database.DefaultConfig(*dbFile)
	case *itemsFile != "":
		cfg.Catalog.Source = config.CatalogSourceYAML
		cfg.Catalog.ItemsFile = *itemsFile
	}

	if *itemQuery != "" {
		item, err := lookupItem(context.Background(), cfg, *itemQuery)
		if err != nil {
			log.Fatalf("Failed to look up item: %v", err)
		}
		printItem(os.Stdout, item, loot.EffectiveLevel(*level, *depth))
		return
	}

	catalog, err := cfg.OpenCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to load item catalog: %v", err)
	}

	table := loot.NewGenerator(catalog).Generate(*level, *depth, category)
	printTable(os.Stdout, category, *level, *depth, table)

	if *roll {
		rollSeed := *seed
		if rollSeed == 0 {
			rollSeed = time.Now().UnixNano()
		}
		rolled := reward.NewResolver(rand.New(rand.NewSource(rollSeed))).Resolve(table)
		printReward(os.Stdout, rollSeed, rolled)
	}
}

func printTable(w io.Writer, category loot.ObjectCategory, level, depth int, table *loot.ScaledLootTable) {
	fmt.Fprintf(w, "%s  player level %d  depth %d  effective level %d\n",
		category, level, depth, table.EffectiveLevel())
	fmt.Fprintf(w, "gold %d-%d  xp %d\n", table.GoldMin(), table.GoldMax(), table.XP())

	drops := table.Drops()
	if len(drops) == 0 {
		fmt.Fprintln(w, "no item drops")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tRARITY\tILVL\tPOOL\tQTY\tCHANCE")
	for _, d := range drops {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d-%d\t%.2f%%\n",
			d.Item.ID, d.Item.Rarity, loot.ItemLevel(d.Item), d.Pool,
			d.MinQuantity, d.MaxQuantity, d.DropChance*100)
	}
	tw.Flush()
}

func printReward(w io.Writer, seed int64, rolled reward.Reward) {
	fmt.Fprintf(w, "\nrolled (seed %d): %d gold, %d xp\n", seed, rolled.Gold, rolled.XP)
	for _, g := range rolled.Grants {
		fmt.Fprintf(w, "  %dx %s\n", g.Quantity, g.Item.Name)
	}
}

// printCurve tabulates gold and XP across player levels at a fixed depth.
func printCurve(w io.Writer, category loot.ObjectCategory, depth int) {
	empty := items.NewCatalog()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "LEVEL\tEFFECTIVE\tGOLD MIN\tGOLD MAX\tXP\t\n")
	for level := 1; level <= 100; level++ {
		if level != 1 && level%5 != 0 {
			continue
		}
		table := loot.GenerateTable(level, depth, category, empty)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n",
			level, table.EffectiveLevel(), table.GoldMin(), table.GoldMax(), table.XP())
	}
	tw.Flush()
}
