package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lawnchairsociety/lootscale/internal/config"
	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/loot"
)

// lookupItem finds an item by ID or partial name in the configured catalog.
// A database catalog is asked for the exact ID first.
func lookupItem(ctx context.Context, cfg *config.Config, query string) (*items.Item, error) {
	var catalog *items.Catalog

	if cfg.Catalog.Source == config.CatalogSourceDatabase {
		db, err := database.OpenWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog database: %w", err)
		}
		defer db.Close()

		item, err := db.GetItem(ctx, query)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, database.ErrItemNotFound) {
			return nil, err
		}
		if catalog, err = db.LoadCatalog(ctx); err != nil {
			return nil, err
		}
	} else {
		var err error
		if catalog, err = cfg.OpenCatalog(ctx); err != nil {
			return nil, err
		}
	}

	item, ok := catalog.FindItem(query)
	if !ok {
		return nil, fmt.Errorf("no item matches %q", query)
	}
	return item, nil
}

// printItem describes where an item can drop at the given effective level.
func printItem(w io.Writer, item *items.Item, effectiveLevel int) {
	fmt.Fprintf(w, "%s [%s]\n", item, item.ID)
	fmt.Fprintf(w, "item level %d  slot %s  equippable %t\n", loot.ItemLevel(item), item.Slot, item.IsEquippable())
	if item.IsStackable() {
		fmt.Fprintf(w, "stacks to %d\n", item.MaxStack)
	} else {
		fmt.Fprintln(w, "does not stack")
	}

	if !loot.InLevelWindow(item, effectiveLevel) {
		fmt.Fprintf(w, "outside the level window at effective level %d\n", effectiveLevel)
		return
	}

	fmt.Fprintf(w, "drops at effective level %d:\n", effectiveLevel)
	found := false
	for _, category := range loot.Categories() {
		for _, pool := range category.Pools() {
			if !pool.Kind.Admits(item) {
				continue
			}
			found = true
			fmt.Fprintf(w, "  %-7s %-10s %6.2f%%  qty %d-%d\n",
				category, pool.Kind, pool.Kind.Chance(pool.BaseChance, item.Rarity)*100, pool.MinQty, pool.MaxQty)
		}
	}
	if !found {
		fmt.Fprintln(w, "  no pool admits this item")
	}
}
