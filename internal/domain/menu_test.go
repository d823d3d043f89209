package domain

import (
	"strings"
	"testing"
)

func testMenu() Menu {
	return Menu{
		Drinks: MenuSection{
			Name: "On Tap",
			Items: map[string]MenuItem{
				"Velvet Lager": {Price: 6.25},
				"Hop Haze IPA": {Price: 7.00},
			},
		},
		Food: []MenuSection{
			{
				Name: "Burgers",
				Items: map[string]MenuItem{
					"Classic Cheeseburger": {Price: 10.50},
					"Velvet Lager":         {Price: 12.00}, // beer-battered special shares the name
				},
			},
			{
				Name: "Sides",
				Items: map[string]MenuItem{
					"Fries": {Price: 4.00},
				},
			},
		},
	}
}

// TestMenu_PriceOf_FindsItemsAcrossSections tests basic lookup
func TestMenu_PriceOf_FindsItemsAcrossSections(t *testing.T) {
	menu := testMenu()

	lookup, ok := menu.PriceOf("Fries")
	if !ok {
		t.Fatal("Expected Fries to be found")
	}
	if lookup.Price != 4.00 || lookup.Section != "Sides" {
		t.Errorf("Expected $4.00 from Sides, got $%.2f from %s", lookup.Price, lookup.Section)
	}

	if _, ok := menu.PriceOf("Cocacola"); ok {
		t.Error("Expected Cocacola to be missing from the catalog")
	}
}

// TestMenu_PriceOf_DrinksWinAmbiguousNames tests the drinks-first scan order
func TestMenu_PriceOf_DrinksWinAmbiguousNames(t *testing.T) {
	menu := testMenu()

	lookup, ok := menu.PriceOf("Velvet Lager")
	if !ok {
		t.Fatal("Expected Velvet Lager to be found")
	}
	if lookup.Section != "On Tap" || lookup.Price != 6.25 {
		t.Errorf("Expected the drink section price to win, got $%.2f from %s", lookup.Price, lookup.Section)
	}
	if !lookup.Ambiguous {
		t.Error("Expected the duplicated name to be flagged ambiguous")
	}

	burger, _ := menu.PriceOf("Classic Cheeseburger")
	if burger.Ambiguous {
		t.Error("Expected a single-section name to not be flagged ambiguous")
	}
}

// TestMenu_ItemNames_SortedAndDeduplicated tests the canonical name list
func TestMenu_ItemNames_SortedAndDeduplicated(t *testing.T) {
	menu := testMenu()
	names := menu.ItemNames()

	expected := []string{"Classic Cheeseburger", "Fries", "Hop Haze IPA", "Velvet Lager"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected names[%d] = %s, got %s", i, name, names[i])
		}
	}
}

// TestMenu_Render_DrinksFirstWithPrices tests the customer-facing rendering
func TestMenu_Render_DrinksFirstWithPrices(t *testing.T) {
	menu := testMenu()
	rendered := menu.Render()

	if !strings.HasPrefix(rendered, "== On Tap ==") {
		t.Errorf("Expected the drink section first, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Classic Cheeseburger - $10.50") {
		t.Errorf("Expected two-decimal prices, got:\n%s", rendered)
	}

	onTap := strings.Index(rendered, "== On Tap ==")
	burgers := strings.Index(rendered, "== Burgers ==")
	sides := strings.Index(rendered, "== Sides ==")
	if onTap > burgers || burgers > sides {
		t.Errorf("Expected section order On Tap, Burgers, Sides, got:\n%s", rendered)
	}
}

// TestMenu_Render_SkipsEmptySections tests that empty sections are omitted
func TestMenu_Render_SkipsEmptySections(t *testing.T) {
	menu := Menu{
		Drinks: MenuSection{Name: "On Tap", Items: map[string]MenuItem{}},
		Food: []MenuSection{
			{Name: "Sides", Items: map[string]MenuItem{"Fries": {Price: 4.00}}},
		},
	}

	rendered := menu.Render()
	if strings.Contains(rendered, "On Tap") {
		t.Errorf("Expected the empty drink section to be skipped, got:\n%s", rendered)
	}
}
