package loot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name cannot be parsed
var ErrUnknownCategory = errors.New("unknown object category")

// ObjectCategory identifies a breakable or openable world object
type ObjectCategory int

const (
	Pot ObjectCategory = iota
	Crate
	Barrel
	Chest
)

// Rewards holds the fixed base reward constants of an object category.
// GoldVarianceTenths is the gold max multiplier in tenths (15 = 1.5x).
type Rewards struct {
	BaseGold           int
	BaseXP             int
	GoldVarianceTenths int
}

// GoldVariance returns the gold max multiplier as a float
func (r Rewards) GoldVariance() float64 {
	return float64(r.GoldVarianceTenths) / 10
}

// Categories returns every object category in declaration order
func Categories() []ObjectCategory {
	return []ObjectCategory{Pot, Crate, Barrel, Chest}
}

// Rewards returns the base reward constants for the category.
// An out-of-range category yields zero rewards.
func (c ObjectCategory) Rewards() Rewards {
	switch c {
	case Pot:
		return Rewards{BaseGold: 5, BaseXP: 10, GoldVarianceTenths: 15} // Small gold, little XP
	case Crate:
		return Rewards{BaseGold: 10, BaseXP: 20, GoldVarianceTenths: 20}
	case Barrel:
		return Rewards{BaseGold: 15, BaseXP: 30, GoldVarianceTenths: 25}
	case Chest:
		return Rewards{BaseGold: 50, BaseXP: 100, GoldVarianceTenths: 30} // High gold, high XP
	default:
		return Rewards{}
	}
}

// String returns the string representation of an ObjectCategory
func (c ObjectCategory) String() string {
	switch c {
	case Pot:
		return "pot"
	case Crate:
		return "crate"
	case Barrel:
		return "barrel"
	case Chest:
		return "chest"
	default:
		return "unknown"
	}
}

// ParseObjectCategory converts a name such as "chest" to an ObjectCategory (case-insensitive)
func ParseObjectCategory(name string) (ObjectCategory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pot":
		return Pot, nil
	case "crate":
		return Crate, nil
	case "barrel":
		return Barrel, nil
	case "chest":
		return Chest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
}
