package loot

import (
	"errors"
	"testing"
)

func TestObjectCategory_Rewards(t *testing.T) {
	tests := []struct {
		category ObjectCategory
		gold     int
		xp       int
		variance float64
	}{
		{Pot, 5, 10, 1.5},
		{Crate, 10, 20, 2.0},
		{Barrel, 15, 30, 2.5},
		{Chest, 50, 100, 3.0},
		{ObjectCategory(9), 0, 0, 0},
	}

	for _, tt := range tests {
		r := tt.category.Rewards()
		if r.BaseGold != tt.gold || r.BaseXP != tt.xp || r.GoldVariance() != tt.variance {
			t.Errorf("%s.Rewards() = %+v, want gold=%d xp=%d variance=%v", tt.category, r, tt.gold, tt.xp, tt.variance)
		}
	}
}

func TestParseObjectCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseObjectCategory(c.String())
		if err != nil {
			t.Fatalf("ParseObjectCategory(%q) returned error: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseObjectCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if got, err := ParseObjectCategory("  CHEST "); err != nil || got != Chest {
		t.Errorf("ParseObjectCategory(\"  CHEST \") = %v, %v; want chest, nil", got, err)
	}

	_, err := ParseObjectCategory("vase")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestObjectCategory_String(t *testing.T) {
	if got := ObjectCategory(-1).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
