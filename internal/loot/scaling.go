package loot

import (
	"math"

	"github.com/lawnchairsociety/lootscale/internal/items"
)

// Scaling contains the reward curves driven by effective level.
// Coefficients are kept in integer hundredths so that floor-after-multiply
// gives the same result on every platform.

const (
	// LevelWindow is the maximum distance between item level and effective level
	LevelWindow = 5

	// MinItemLevel and MaxItemLevel bound the level estimated from item value
	MinItemLevel = 1
	MaxItemLevel = 100

	// MaxEffectiveLevel caps player level, depth and effective level so the
	// integer curves below cannot overflow
	MaxEffectiveLevel = 10000

	goldPerLevelHundredths = 15 // +15% gold per level
	xpPerLevelHundredths   = 12 // +12% xp per level
)

// EffectiveLevel blends player level and area depth into the single value that
// drives every scaling decision.
// Overworld (depth 0): player level. Otherwise: trunc(player*0.3 + depth*0.7).
// Inputs are clamped to [1, MaxEffectiveLevel] first.
func EffectiveLevel(playerLevel, areaDepth int) int {
	playerLevel = max(1, min(MaxEffectiveLevel, playerLevel))
	if areaDepth <= 0 {
		return playerLevel
	}
	areaDepth = min(MaxEffectiveLevel, areaDepth)
	return (playerLevel*3 + areaDepth*7) / 10
}

// ScaleGoldMin calculates minimum gold for a category
// Formula: floor(base_gold * (1 + level * 0.15))
func ScaleGoldMin(effectiveLevel int, category ObjectCategory) int {
	r := category.Rewards()
	return r.BaseGold * levelMultiplier(effectiveLevel, goldPerLevelHundredths) / 100
}

// ScaleGoldMax calculates maximum gold for a category
// Formula: floor(base_gold * (1 + level * 0.15) * variance)
func ScaleGoldMax(effectiveLevel int, category ObjectCategory) int {
	r := category.Rewards()
	return r.BaseGold * levelMultiplier(effectiveLevel, goldPerLevelHundredths) * r.GoldVarianceTenths / 1000
}

// ScaleXP calculates the XP award for a category
// Formula: floor(base_xp * (1 + level * 0.12))
func ScaleXP(effectiveLevel int, category ObjectCategory) int {
	r := category.Rewards()
	return r.BaseXP * levelMultiplier(effectiveLevel, xpPerLevelHundredths) / 100
}

// levelMultiplier returns (1 + level * coeff) in hundredths, never below 1.0.
// Levels above MaxEffectiveLevel are treated as MaxEffectiveLevel.
func levelMultiplier(level, coeffHundredths int) int {
	level = max(0, min(MaxEffectiveLevel, level))
	return 100 + level*coeffHundredths
}

// ItemLevel estimates an item's level from its value.
// Formula: clamp(floor(sqrt(value / 10)), 1, 100)
//
//	10 gold = level 1, 90 gold = level 3, 1000 gold = level 10, 10000 gold = level 31
func ItemLevel(item *items.Item) int {
	value := item.Value
	if value < 0 {
		value = 0
	}
	level := int(math.Sqrt(float64(value) / 10.0))
	return max(MinItemLevel, min(MaxItemLevel, level))
}

// InLevelWindow returns true if the item is within LevelWindow levels of effectiveLevel
func InLevelWindow(item *items.Item, effectiveLevel int) bool {
	diff := ItemLevel(item) - effectiveLevel
	if diff < 0 {
		diff = -diff
	}
	return diff <= LevelWindow
}

// RarityMultiplier returns the drop chance multiplier for a rarity.
// Rarer items drop less often.
func RarityMultiplier(rarity items.Rarity) float64 {
	switch rarity {
	case items.Common:
		return 1.0
	case items.Uncommon:
		return 0.5
	case items.Rare:
		return 0.2
	case items.Epic:
		return 0.05
	case items.Legendary:
		return 0.01
	default:
		return 1.0
	}
}
