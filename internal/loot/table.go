package loot

import "github.com/lawnchairsociety/lootscale/internal/items"

// DropCandidate is one independent drop roll in a loot table.
// Candidates are not mutually exclusive and chances do not sum to 1.
type DropCandidate struct {
	Item        *items.Item // shared catalog entry, never mutated
	MinQuantity int
	MaxQuantity int
	DropChance  float64 // independent probability in [0, 1]
	Pool        PoolKind
}

// ScaledLootTable is the scaled reward content of one object.
// It is built by the Generator and must be treated as read-only afterwards.
type ScaledLootTable struct {
	effectiveLevel int
	goldMin        int
	goldMax        int
	xp             int
	drops          []DropCandidate
}

// newScaledLootTable creates a table, enforcing 0 <= goldMin <= goldMax and xp >= 0
func newScaledLootTable(effectiveLevel, goldMin, goldMax, xp int) *ScaledLootTable {
	goldMin = max(goldMin, 0)
	goldMax = max(goldMax, goldMin)
	return &ScaledLootTable{
		effectiveLevel: effectiveLevel,
		goldMin:        goldMin,
		goldMax:        goldMax,
		xp:             max(xp, 0),
		drops:          make([]DropCandidate, 0),
	}
}

// addDropCandidate appends a candidate, clamping chance to [0,1] and quantities to 1 <= min <= max
func (t *ScaledLootTable) addDropCandidate(item *items.Item, pool PoolKind, minQty, maxQty int, chance float64) {
	minQty = max(minQty, 1)
	maxQty = max(maxQty, minQty)
	chance = max(0, min(1, chance))

	t.drops = append(t.drops, DropCandidate{
		Item:        item,
		MinQuantity: minQty,
		MaxQuantity: maxQty,
		DropChance:  chance,
		Pool:        pool,
	})
}

// EffectiveLevel returns the blended level the table was scaled for
func (t *ScaledLootTable) EffectiveLevel() int { return t.effectiveLevel }

// GoldMin returns the minimum gold award
func (t *ScaledLootTable) GoldMin() int { return t.goldMin }

// GoldMax returns the maximum gold award
func (t *ScaledLootTable) GoldMax() int { return t.goldMax }

// XP returns the experience award
func (t *ScaledLootTable) XP() int { return t.xp }

// Drops returns a copy of the drop candidates in pool processing order
func (t *ScaledLootTable) Drops() []DropCandidate {
	out := make([]DropCandidate, len(t.drops))
	copy(out, t.drops)
	return out
}

// DropCount returns the number of drop candidates
func (t *ScaledLootTable) DropCount() int { return len(t.drops) }
