package items

// ItemType represents the category of an item
type ItemType int

const (
	Misc ItemType = iota
	Weapon
	Armor
	Consumable
	Material
	Tool
	Quest
)

// String returns the string representation of an ItemType
func (t ItemType) String() string {
	switch t {
	case Weapon:
		return "weapon"
	case Armor:
		return "armor"
	case Consumable:
		return "consumable"
	case Material:
		return "material"
	case Tool:
		return "tool"
	case Quest:
		return "quest"
	case Misc:
		return "misc"
	default:
		return "unknown"
	}
}

// IsEquippable returns true if the item type can be equipped
func (t ItemType) IsEquippable() bool {
	return t == Weapon || t == Armor
}

// StringToItemType converts a string to an ItemType
func StringToItemType(typeStr string) ItemType {
	switch typeStr {
	case "weapon":
		return Weapon
	case "armor":
		return Armor
	case "consumable", "potion", "food":
		return Consumable
	case "material":
		return Material
	case "tool":
		return Tool
	case "quest":
		return Quest
	default:
		return Misc
	}
}

// Rarity is the rarity tier of an item
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// String returns the string representation of a Rarity
func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// StringToRarity converts a string to a Rarity.
// Unknown or empty strings map to Common.
func StringToRarity(rarityStr string) Rarity {
	switch rarityStr {
	case "uncommon":
		return Uncommon
	case "rare":
		return Rare
	case "epic":
		return Epic
	case "legendary":
		return Legendary
	default:
		return Common
	}
}
