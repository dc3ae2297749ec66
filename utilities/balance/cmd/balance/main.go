// balance is a Monte Carlo simulator for testing loot balance.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	rolls   - Open one object many times and report what it pays out
//	depths  - Test how area depth changes the payout for one player
//	sweep   - Compare every object category across player levels
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/loot"
	"github.com/lawnchairsociety/lootscale/utilities/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "rolls":
		runRollsSim()
	case "depths":
		runDepthSim()
	case "sweep":
		runSweep()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Lootscale Balance Simulator

A Monte Carlo simulator for testing loot balance.

Usage: balance <command> [options]

Commands:
  rolls   Open one object many times and report what it pays out
  depths  Test how area depth changes the payout for one player
  sweep   Compare every object category across player levels

Examples:
  balance rolls -level=20 -depth=50 -category=chest -iterations=50000
  balance depths -level=10 -category=crate -end-depth=100 -step=10
  balance sweep -items=data/items.yaml

Use "balance <command> -h" for more information about a command.`)
}

// commonFlags registers the options every command shares
func commonFlags(fs *flag.FlagSet) (itemsFile *string, iterations *int, seed *int64) {
	itemsFile = fs.String("items", "data/items.yaml", "Path to items YAML file")
	iterations = fs.Int("iterations", 10000, "Number of rolls per scenario")
	seed = fs.Int64("seed", 0, "Random seed (default: based on current time)")
	return
}

func loadCatalog(path string) *items.Catalog {
	catalog, err := items.LoadCatalog(path)
	if err != nil {
		fmt.Printf("Failed to load items: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func parseCategory(name string) loot.ObjectCategory {
	category, err := loot.ParseObjectCategory(name)
	if err != nil {
		fmt.Printf("Invalid category: %v\n", err)
		os.Exit(1)
	}
	return category
}

func runRollsSim() {
	fs := flag.NewFlagSet("rolls", flag.ExitOnError)
	level := fs.Int("level", 1, "Player level")
	depth := fs.Int("depth", 0, "Area depth (0 = overworld)")
	categoryName := fs.String("category", "chest", "Object category")
	itemsFile, iterations, seed := commonFlags(fs)
	fs.Parse(os.Args[2:])

	scenario := balance.LootScenario{
		PlayerLevel: *level,
		AreaDepth:   *depth,
		Category:    parseCategory(*categoryName),
	}
	catalog := loadCatalog(*itemsFile)

	fmt.Println("=== Loot Roll Simulation ===")
	fmt.Println()
	fmt.Printf("Object: %s, Player Level %d, Depth %d\n", scenario.Category, scenario.PlayerLevel, scenario.AreaDepth)
	fmt.Printf("Catalog: %d items, Iterations: %d\n", catalog.Len(), *iterations)
	fmt.Println()

	result := balance.RunLootSimulation(catalog, scenario, *iterations, resolveSeed(*seed))
	printSimulationResult(result)
}

func runDepthSim() {
	fs := flag.NewFlagSet("depths", flag.ExitOnError)
	level := fs.Int("level", 10, "Player level")
	categoryName := fs.String("category", "chest", "Object category")
	startDepth := fs.Int("start-depth", 0, "Starting depth")
	endDepth := fs.Int("end-depth", 50, "Ending depth")
	step := fs.Int("step", 5, "Depth step")
	itemsFile, iterations, seed := commonFlags(fs)
	fs.Parse(os.Args[2:])

	if *step < 1 {
		*step = 1
	}
	depths := make([]int, 0)
	for d := *startDepth; d <= *endDepth; d += *step {
		depths = append(depths, d)
	}

	category := parseCategory(*categoryName)
	catalog := loadCatalog(*itemsFile)

	fmt.Println("=== Depth Scaling Simulation ===")
	fmt.Println()
	fmt.Printf("Object: %s, Player Level %d\n", category, *level)
	fmt.Printf("Testing depths %d-%d (step %d), %d iterations each\n", *startDepth, *endDepth, *step, *iterations)
	fmt.Println()

	results := balance.RunDepthScalingSim(catalog, *level, category, depths, *iterations, resolveSeed(*seed))

	fmt.Printf("%-6s %-5s %-11s %-9s %-5s %-9s %-7s\n", "Depth", "Eff", "Gold Range", "Avg Gold", "XP", "Avg Items", "Empty")
	fmt.Println(strings.Repeat("-", 60))
	for _, r := range results {
		fmt.Printf("%-6d %-5d %-11s %-9.1f %-5d %-9.2f %5.1f%%\n",
			r.Depth, r.Result.EffectiveLevel,
			fmt.Sprintf("%d-%d", r.Result.GoldMin, r.Result.GoldMax),
			r.Result.AvgGold, r.Result.XP, r.Result.AvgItems, r.Result.EmptyRate)
	}
}

func runSweep() {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	itemsFile, iterations, seed := commonFlags(fs)
	fs.Parse(os.Args[2:])

	catalog := loadCatalog(*itemsFile)
	levels := []int{1, 5, 10, 20, 30, 50, 75, 100}

	fmt.Println("=== Category Sweep ===")
	fmt.Println()
	fmt.Printf("Overworld, %d iterations per cell (avg gold / avg items)\n", *iterations)
	fmt.Println()

	header := fmt.Sprintf("%-6s", "Level")
	for _, c := range loot.Categories() {
		header += fmt.Sprintf(" %-16s", c)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	for _, row := range balance.RunCategorySweep(catalog, levels, *iterations, resolveSeed(*seed)) {
		line := fmt.Sprintf("%-6d", row.PlayerLevel)
		for _, r := range row.Results {
			line += fmt.Sprintf(" %-16s", fmt.Sprintf("%.0f / %.2f", r.AvgGold, r.AvgItems))
		}
		fmt.Println(line)
	}
}

func printSimulationResult(result balance.SimulationResult) {
	fmt.Println("--- Results ---")
	fmt.Printf("Effective Level: %d\n", result.EffectiveLevel)
	fmt.Printf("Gold:            %d-%d (avg %.1f, observed %d-%d)\n",
		result.GoldMin, result.GoldMax, result.AvgGold, result.MinGold, result.MaxGold)
	fmt.Printf("XP:              %d\n", result.XP)
	fmt.Printf("Items per roll:  %.2f\n", result.AvgItems)
	fmt.Printf("Empty rolls:     %.1f%%\n", result.EmptyRate)

	if len(result.Items) == 0 {
		fmt.Println()
		fmt.Println("No items in the level window.")
		return
	}

	fmt.Println()
	fmt.Printf("%-22s %-9s %-9s %-7s\n", "Item", "Expected", "Observed", "Avg Qty")
	fmt.Println(strings.Repeat("-", 50))
	for _, s := range result.Items {
		fmt.Printf("%-22s %7.2f%% %8.2f%% %7.2f\n", s.ItemID, s.ExpectedRate*100, s.DropRate*100, s.AvgQuantity)
	}
}
