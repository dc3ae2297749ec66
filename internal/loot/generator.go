// Package loot scales gold, experience and item drop tables for breakable
// objects and chests from player level and area depth.
package loot

import (
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/logger"
)

// Generator builds scaled loot tables from an item catalog.
// It holds no mutable state; concurrent calls are safe while the catalog is not mutated.
type Generator struct {
	catalog items.ItemCatalog
}

// NewGenerator creates a generator over the given catalog. A nil catalog behaves as empty.
func NewGenerator(catalog items.ItemCatalog) *Generator {
	return &Generator{catalog: catalog}
}

// GenerateTable builds a loot table for a single call without keeping a Generator around
func GenerateTable(playerLevel, areaDepth int, category ObjectCategory, catalog items.ItemCatalog) *ScaledLootTable {
	return NewGenerator(catalog).Generate(playerLevel, areaDepth, category)
}

// Generate builds the scaled loot table for an object.
// playerLevel is 1+, areaDepth is 0 in the overworld and 1+ inside a dungeon.
func (g *Generator) Generate(playerLevel, areaDepth int, category ObjectCategory) *ScaledLootTable {
	level := EffectiveLevel(playerLevel, areaDepth)

	table := newScaledLootTable(
		level,
		ScaleGoldMin(level, category),
		ScaleGoldMax(level, category),
		ScaleXP(level, category),
	)

	candidates := g.candidates(level)
	for _, pool := range category.Pools() {
		for _, item := range candidates {
			if pool.Kind.Admits(item) {
				table.addDropCandidate(item, pool.Kind, pool.MinQty, pool.MaxQty, pool.Kind.Chance(pool.BaseChance, item.Rarity))
			}
		}
	}

	logger.Debug("Generated loot table",
		"category", category.String(),
		"player_level", playerLevel,
		"area_depth", areaDepth,
		"effective_level", level,
		"gold_min", table.goldMin,
		"gold_max", table.goldMax,
		"xp", table.xp,
		"drops", len(table.drops))

	return table
}

// candidates returns catalog items within the level window of effectiveLevel
func (g *Generator) candidates(effectiveLevel int) []*items.Item {
	if g.catalog == nil {
		return nil
	}

	var valid []*items.Item
	for _, item := range g.catalog.All() {
		if item != nil && InLevelWindow(item, effectiveLevel) {
			valid = append(valid, item)
		}
	}
	return valid
}
