// Package reward turns a scaled loot table into the gold, experience and items
// actually granted to a player.
package reward

import (
	"math/rand"

	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/loot"
)

// Grant is one item awarded from a loot table
type Grant struct {
	Item     *items.Item
	Quantity int
}

// Reward is the resolved outcome of breaking or opening an object
type Reward struct {
	Gold   int
	XP     int
	Grants []Grant
}

// Resolver rolls loot tables. A Resolver is not safe for concurrent use
// because *rand.Rand is not.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver using the given random source
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve rolls gold uniformly in [GoldMin, GoldMax] and each drop candidate
// independently: the item is granted iff a uniform draw in [0,1) is below its
// drop chance, with a quantity chosen uniformly in [MinQuantity, MaxQuantity].
func (r *Resolver) Resolve(table *loot.ScaledLootTable) Reward {
	reward := Reward{
		Gold: r.between(table.GoldMin(), table.GoldMax()),
		XP:   table.XP(),
	}

	for _, drop := range table.Drops() {
		if r.rng.Float64() < drop.DropChance {
			reward.Grants = append(reward.Grants, Grant{
				Item:     drop.Item,
				Quantity: r.between(drop.MinQuantity, drop.MaxQuantity),
			})
		}
	}

	return reward
}

// between returns a uniform integer in [lo, hi]
func (r *Resolver) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// TotalQuantity returns how many units of an item the reward grants
func (rw Reward) TotalQuantity(itemID string) int {
	total := 0
	for _, g := range rw.Grants {
		if g.Item.ID == itemID {
			total += g.Quantity
		}
	}
	return total
}
