package items

import "fmt"

// EquipmentSlot represents where an item can be equipped
type EquipmentSlot int

const (
	SlotNone EquipmentSlot = iota
	SlotHead
	SlotBody
	SlotLegs
	SlotFeet
	SlotHands
	SlotWeapon
	SlotOffHand
)

// String returns the string representation of an EquipmentSlot
func (s EquipmentSlot) String() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	case SlotLegs:
		return "legs"
	case SlotFeet:
		return "feet"
	case SlotHands:
		return "hands"
	case SlotWeapon:
		return "weapon"
	case SlotOffHand:
		return "off-hand"
	default:
		return "none"
	}
}

// StringToEquipmentSlot converts a string to an EquipmentSlot
func StringToEquipmentSlot(slotStr string) EquipmentSlot {
	switch slotStr {
	case "head":
		return SlotHead
	case "body":
		return SlotBody
	case "legs":
		return SlotLegs
	case "feet":
		return SlotFeet
	case "hands":
		return SlotHands
	case "weapon":
		return SlotWeapon
	case "off-hand":
		return SlotOffHand
	default:
		return SlotNone
	}
}

// Item is a static catalog entry. Items are shared by reference and never
// mutated once they are part of a Catalog.
type Item struct {
	ID          string // Unique identifier from YAML key (e.g., "iron_sword")
	Name        string
	Description string
	Type        ItemType
	Rarity      Rarity
	Value       int // Base sell value in gold
	MaxStack    int // 1 = not stackable
	Slot        EquipmentSlot
}

// NewItem creates a new item with the given properties.
// Negative values are clamped to 0.
func NewItem(id, name string, itemType ItemType, rarity Rarity, value int) *Item {
	if value < 0 {
		value = 0
	}
	return &Item{
		ID:       id,
		Name:     name,
		Type:     itemType,
		Rarity:   rarity,
		Value:    value,
		MaxStack: 1,
		Slot:     SlotNone,
	}
}

// IsEquippable reports whether the item can be equipped. This is a capability,
// not a type: an item of any type that carries an equipment slot qualifies.
func (i *Item) IsEquippable() bool {
	return i.Type.IsEquippable() || i.Slot != SlotNone
}

// IsStackable returns true if more than one unit fits in a stack
func (i *Item) IsStackable() bool {
	return i.MaxStack > 1
}

// String returns a formatted string representation of the item
func (i *Item) String() string {
	return fmt.Sprintf("%s (%s, %s, %d gold)", i.Name, i.Type, i.Rarity, i.Value)
}
