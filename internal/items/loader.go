package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemDefinition represents an item definition from the YAML file
type ItemDefinition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Rarity      string `yaml:"rarity,omitempty"` // common, uncommon, rare, epic, legendary
	Value       int    `yaml:"value"`
	MaxStack    int    `yaml:"max_stack,omitempty"`
	// Equipment slot (optional); any item with a slot is equippable
	Slot string `yaml:"slot,omitempty"`
}

// ItemsConfig represents the structure of the items.yaml file
type ItemsConfig struct {
	Items map[string]ItemDefinition `yaml:"items"`
}

// LoadItemsFromYAML loads item definitions from a YAML file
func LoadItemsFromYAML(filename string) (*ItemsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return ParseItemsYAML(data)
}

// ParseItemsYAML parses item definitions from raw YAML
func ParseItemsYAML(data []byte) (*ItemsConfig, error) {
	var config ItemsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}
	return &config, nil
}

// CreateItemFromDefinition creates an Item from an ItemDefinition
// The id parameter is the YAML key for this item (e.g., "iron_sword")
func CreateItemFromDefinition(id string, def ItemDefinition) *Item {
	item := NewItem(id, def.Name, StringToItemType(def.Type), StringToRarity(def.Rarity), def.Value)
	item.Description = def.Description

	if def.MaxStack > 1 {
		item.MaxStack = def.MaxStack
	}
	if def.Slot != "" {
		item.Slot = StringToEquipmentSlot(def.Slot)
	}

	return item
}

// Catalog builds an immutable catalog from every definition in the config
func (config *ItemsConfig) Catalog() *Catalog {
	list := make([]*Item, 0, len(config.Items))
	for id, def := range config.Items {
		list = append(list, CreateItemFromDefinition(id, def))
	}
	return NewCatalog(list...)
}

// LoadCatalog reads a YAML items file and returns its catalog
func LoadCatalog(filename string) (*Catalog, error) {
	config, err := LoadItemsFromYAML(filename)
	if err != nil {
		return nil, err
	}
	return config.Catalog(), nil
}
