package loot

import "github.com/lawnchairsociety/lootscale/internal/items"

// PoolKind selects which catalog items a drop pool admits
type PoolKind int

const (
	ConsumablePool PoolKind = iota
	MaterialPool
	EquipmentPool
)

// equipmentChanceFactor makes equipment rarer than consumables and materials of the same rarity
const equipmentChanceFactor = 0.5

// String returns the string representation of a PoolKind
func (k PoolKind) String() string {
	switch k {
	case ConsumablePool:
		return "consumable"
	case MaterialPool:
		return "material"
	case EquipmentPool:
		return "equipment"
	default:
		return "unknown"
	}
}

// Admits reports whether an item belongs in the pool.
// Equipment is a capability check, so pools may overlap.
func (k PoolKind) Admits(item *items.Item) bool {
	switch k {
	case ConsumablePool:
		return item.Type == items.Consumable
	case MaterialPool:
		return item.Type == items.Material
	case EquipmentPool:
		return item.IsEquippable()
	default:
		return false
	}
}

// Chance returns the drop chance of an item in this pool
func (k PoolKind) Chance(baseChance float64, rarity items.Rarity) float64 {
	chance := baseChance * RarityMultiplier(rarity)
	if k == EquipmentPool {
		chance *= equipmentChanceFactor
	}
	return chance
}

// Pool is one drop layer of an object category
type Pool struct {
	Kind       PoolKind
	BaseChance float64
	MinQty     int
	MaxQty     int
}

// Pools returns the drop pools of a category in processing order.
// An out-of-range category has no pools.
func (c ObjectCategory) Pools() []Pool {
	switch c {
	case Pot:
		// Pots: low chance for consumables only
		return []Pool{
			{ConsumablePool, 0.15, 1, 1},
		}
	case Crate:
		// Crates: materials and low-tier equipment
		return []Pool{
			{MaterialPool, 0.40, 1, 3},
			{EquipmentPool, 0.20, 1, 1},
			{ConsumablePool, 0.25, 1, 2},
		}
	case Barrel:
		// Barrels: food and materials
		return []Pool{
			{ConsumablePool, 0.35, 1, 3},
			{MaterialPool, 0.30, 1, 2},
		}
	case Chest:
		return []Pool{
			{EquipmentPool, 0.60, 1, 2},
			{ConsumablePool, 0.50, 2, 4},
			{MaterialPool, 0.40, 2, 5},
		}
	default:
		return nil
	}
}
