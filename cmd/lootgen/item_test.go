package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lawnchairsociety/lootscale/internal/config"
	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/items"
)

const lookupItemsYAML = `items:
  iron_sword:
    name: Iron Sword
    type: weapon
    slot: weapon
    value: 1000
  health_potion:
    name: Health Potion
    type: consumable
    value: 1000
    max_stack: 20
`

func TestLookupItem_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(lookupItemsYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Catalog.ItemsFile = path

	tests := []struct {
		query   string
		wantID  string
		wantErr bool
	}{
		{"iron_sword", "iron_sword", false},
		{"potion", "health_potion", false},
		{"dragon", "", true},
	}

	for _, tt := range tests {
		item, err := lookupItem(context.Background(), cfg, tt.query)
		if tt.wantErr {
			if err == nil {
				t.Errorf("lookupItem(%q) expected error, got %v", tt.query, item)
			}
			continue
		}
		if err != nil {
			t.Fatalf("lookupItem(%q) error: %v", tt.query, err)
		}
		if item.ID != tt.wantID {
			t.Errorf("lookupItem(%q) = %q, want %q", tt.query, item.ID, tt.wantID)
		}
	}
}

func TestLookupItem_Database(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	err = db.SaveItems(ctx, []*items.Item{
		items.NewItem("gold_ore", "Gold Ore", items.Material, items.Rare, 50),
		items.NewItem("iron_ore", "Iron Ore", items.Material, items.Common, 10),
	})
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Catalog.Source = config.CatalogSourceDatabase
	cfg.Database = database.DefaultConfig(dbPath)

	// exact ID
	item, err := lookupItem(ctx, cfg, "gold_ore")
	if err != nil || item.ID != "gold_ore" {
		t.Fatalf("lookupItem(gold_ore) = %v, %v", item, err)
	}

	// falls back to name matching when the ID misses
	item, err = lookupItem(ctx, cfg, "Iron")
	if err != nil || item.ID != "iron_ore" {
		t.Fatalf("lookupItem(Iron) = %v, %v", item, err)
	}

	if _, err := lookupItem(ctx, cfg, "mithril"); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestPrintItem(t *testing.T) {
	potion := items.NewItem("health_potion", "Health Potion", items.Consumable, items.Common, 1000)
	potion.MaxStack = 20

	var buf bytes.Buffer
	printItem(&buf, potion, 10)
	out := buf.String()

	for _, want := range []string{"item level 10", "stacks to 20", "pot", "15.00%", "chest", "50.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "equipment") {
		t.Errorf("consumable should not be listed in equipment pools:\n%s", out)
	}
}

func TestPrintItem_OutsideWindow(t *testing.T) {
	sword := items.NewItem("iron_sword", "Iron Sword", items.Weapon, items.Common, 1000)

	var buf bytes.Buffer
	printItem(&buf, sword, 50)
	out := buf.String()

	if !strings.Contains(out, "does not stack") || !strings.Contains(out, "outside the level window") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPrintItem_NoPool(t *testing.T) {
	pickaxe := items.NewItem("pickaxe", "Pickaxe", items.Tool, items.Common, 1000)

	var buf bytes.Buffer
	printItem(&buf, pickaxe, 10)

	if !strings.Contains(buf.String(), "no pool admits this item") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
