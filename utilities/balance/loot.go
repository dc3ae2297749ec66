// Package balance provides Monte Carlo simulation tools for loot balance testing.
package balance

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/loot"
	"github.com/lawnchairsociety/lootscale/internal/reward"
)

// LootScenario is one object being opened repeatedly
type LootScenario struct {
	PlayerLevel int
	AreaDepth   int
	Category    loot.ObjectCategory
}

// ItemDropStats aggregates how often one item dropped across a simulation
type ItemDropStats struct {
	ItemID       string
	ExpectedRate float64 // chance of at least one drop: 1 - product of (1 - p) over its candidates
	Drops        int     // rolls in which the item dropped at least once
	DropRate     float64 // observed Drops / simulations
	AvgQuantity  float64 // average quantity when it dropped
}

// SimulationResult holds aggregated results from many loot rolls
type SimulationResult struct {
	Scenario       LootScenario
	Simulations    int
	EffectiveLevel int
	GoldMin        int
	GoldMax        int
	AvgGold        float64
	MinGold        int
	MaxGold        int
	XP             int
	AvgItems       float64 // average total quantity of items per roll
	EmptyRate      float64 // percentage of rolls with no items
	Items          []ItemDropStats
}

// RunLootSimulation opens the scenario's object iterations times.
// The same seed always produces the same result.
func RunLootSimulation(catalog items.ItemCatalog, scenario LootScenario, iterations int, seed int64) SimulationResult {
	table := loot.GenerateTable(scenario.PlayerLevel, scenario.AreaDepth, scenario.Category, catalog)
	resolver := reward.NewResolver(rand.New(rand.NewSource(seed)))

	result := SimulationResult{
		Scenario:       scenario,
		Simulations:    iterations,
		EffectiveLevel: table.EffectiveLevel(),
		GoldMin:        table.GoldMin(),
		GoldMax:        table.GoldMax(),
		XP:             table.XP(),
		MinGold:        math.MaxInt,
	}

	// an item in several pools misses only if every candidate misses
	missChance := make(map[string]float64)
	for _, d := range table.Drops() {
		if _, ok := missChance[d.Item.ID]; !ok {
			missChance[d.Item.ID] = 1
		}
		missChance[d.Item.ID] *= 1 - d.DropChance
	}

	drops := make(map[string]int)
	quantities := make(map[string]int)
	totalGold := 0
	totalItems := 0
	empty := 0

	for i := 0; i < iterations; i++ {
		rolled := resolver.Resolve(table)

		totalGold += rolled.Gold
		if rolled.Gold < result.MinGold {
			result.MinGold = rolled.Gold
		}
		if rolled.Gold > result.MaxGold {
			result.MaxGold = rolled.Gold
		}

		if len(rolled.Grants) == 0 {
			empty++
		}
		for _, g := range rolled.Grants {
			totalItems += g.Quantity
		}
		for id := range missChance {
			if qty := rolled.TotalQuantity(id); qty > 0 {
				drops[id]++
				quantities[id] += qty
			}
		}
	}

	if iterations <= 0 {
		result.MinGold = 0
		return result
	}

	n := float64(iterations)
	result.AvgGold = float64(totalGold) / n
	result.AvgItems = float64(totalItems) / n
	result.EmptyRate = float64(empty) / n * 100

	for id, miss := range missChance {
		stats := ItemDropStats{
			ItemID:       id,
			ExpectedRate: 1 - miss,
			Drops:        drops[id],
			DropRate:     float64(drops[id]) / n,
		}
		if drops[id] > 0 {
			stats.AvgQuantity = float64(quantities[id]) / float64(drops[id])
		}
		result.Items = append(result.Items, stats)
	}
	sort.Slice(result.Items, func(i, j int) bool {
		if result.Items[i].DropRate != result.Items[j].DropRate {
			return result.Items[i].DropRate > result.Items[j].DropRate
		}
		return result.Items[i].ItemID < result.Items[j].ItemID
	})

	return result
}

// DepthScalingResult is the outcome of one depth in a depth sweep
type DepthScalingResult struct {
	Depth  int
	Result SimulationResult
}

// RunDepthScalingSim simulates the same player and object across area depths
func RunDepthScalingSim(catalog items.ItemCatalog, playerLevel int, category loot.ObjectCategory, depths []int, iterations int, seed int64) []DepthScalingResult {
	results := make([]DepthScalingResult, 0, len(depths))
	for i, depth := range depths {
		scenario := LootScenario{PlayerLevel: playerLevel, AreaDepth: depth, Category: category}
		results = append(results, DepthScalingResult{
			Depth:  depth,
			Result: RunLootSimulation(catalog, scenario, iterations, seed+int64(i)),
		})
	}
	return results
}

// CategorySweepResult compares every object category at one player level
type CategorySweepResult struct {
	PlayerLevel int
	Results     []SimulationResult // one per category, in loot.Categories() order
}

// RunCategorySweep simulates every category at each player level in the overworld
func RunCategorySweep(catalog items.ItemCatalog, levels []int, iterations int, seed int64) []CategorySweepResult {
	results := make([]CategorySweepResult, 0, len(levels))
	for i, level := range levels {
		row := CategorySweepResult{PlayerLevel: level}
		for j, category := range loot.Categories() {
			scenario := LootScenario{PlayerLevel: level, Category: category}
			row.Results = append(row.Results, RunLootSimulation(catalog, scenario, iterations, seed+int64(i*len(loot.Categories())+j)))
		}
		results = append(results, row)
	}
	return results
}
