package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/lootscale/internal/items"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testItems() []*items.Item {
	sword := items.NewItem("iron_sword", "Iron Sword", items.Weapon, items.Common, 100)
	sword.Description = "A sturdy sword forged from iron."
	sword.Slot = items.SlotWeapon

	potion := items.NewItem("health_potion", "Health Potion", items.Consumable, items.Common, 25)
	potion.MaxStack = 10

	ore := items.NewItem("gold_ore", "Gold Ore", items.Material, items.Rare, 50)
	ore.MaxStack = 99

	return []*items.Item{sword, potion, ore}
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		t.Errorf("Failed to query items table: %v", err)
	}
}

func TestOpenWithConfig_InvalidDriver(t *testing.T) {
	_, err := OpenWithConfig(Config{Driver: "oracle"})
	if err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SaveItems(ctx, testItems()); err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}

	count, err := db.CountItems(ctx)
	if err != nil {
		t.Fatalf("CountItems failed: %v", err)
	}
	if count != 3 {
		t.Errorf("CountItems = %d, want 3", count)
	}

	catalog, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if catalog.Len() != 3 {
		t.Fatalf("catalog Len() = %d, want 3", catalog.Len())
	}

	sword, ok := catalog.Get("iron_sword")
	if !ok {
		t.Fatal("iron_sword missing from catalog")
	}
	if sword.Type != items.Weapon || sword.Slot != items.SlotWeapon || sword.Value != 100 {
		t.Errorf("unexpected sword: %+v", sword)
	}
	if sword.Description != "A sturdy sword forged from iron." {
		t.Errorf("Description = %q", sword.Description)
	}
	if !sword.IsEquippable() {
		t.Error("sword should be equippable after round trip")
	}

	ore, _ := catalog.Get("gold_ore")
	if ore.Rarity != items.Rare || ore.MaxStack != 99 {
		t.Errorf("unexpected ore: %+v", ore)
	}
}

func TestSaveItems_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SaveItems(ctx, testItems()); err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}

	updated := items.NewItem("gold_ore", "Gold Ore", items.Material, items.Epic, 75)
	if err := db.SaveItems(ctx, []*items.Item{updated, nil}); err != nil {
		t.Fatalf("SaveItems upsert failed: %v", err)
	}

	count, _ := db.CountItems(ctx)
	if count != 3 {
		t.Errorf("CountItems after upsert = %d, want 3", count)
	}

	ore, err := db.GetItem(ctx, "gold_ore")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if ore.Rarity != items.Epic || ore.Value != 75 {
		t.Errorf("upsert not applied: %+v", ore)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetItem(context.Background(), "dragon_egg")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	db := setupTestDB(t)

	catalog, err := db.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d items", catalog.Len())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite ok", DefaultConfig("data/items.db"), false},
		{"sqlite without path", Config{Driver: "sqlite"}, true},
		{"postgres ok", Config{Driver: "postgres", Postgres: PostgresConfig{Host: "localhost", Database: "loot"}}, false},
		{"postgres without database", Config{Driver: "postgres", Postgres: PostgresConfig{Host: "localhost"}}, true},
		{"unknown driver", Config{Driver: "mysql"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := DefaultPostgresConfig()
	cfg.User = "loot"
	cfg.Password = "secret"
	cfg.Database = "lootscale"

	want := "host=localhost port=5432 user=loot password=secret dbname=lootscale sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
