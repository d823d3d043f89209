package application

import (
	"context"
	"errors"
	"testing"

	"brewpub-assistant/internal/domain"
)

// TestNormalize_DropsUnmatchedItemsKeepsMatched tests mixed recognizability
func TestNormalize_DropsUnmatchedItemsKeepsMatched(t *testing.T) {
	// Arrange
	extractor := &MockExtractor{
		MatchMenuItemFunc: func(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error) {
			if rawName == "Cheeseburger" {
				return "Classic Cheeseburger", true, nil
			}
			return "", false, nil
		},
	}
	normalizer := NewItemNormalizer(extractor)

	// Act
	result := normalizer.Normalize(context.Background(), testCatalog(), map[string]int{
		"Cheeseburger": 1,
		"Cocacola":     2,
	})

	// Assert
	if len(result) != 1 {
		t.Fatalf("Expected 1 surviving line, got %d", len(result))
	}
	line, ok := result["Classic Cheeseburger"]
	if !ok {
		t.Fatal("Expected the corrected canonical name as the key")
	}
	if line.Quantity != 1 || line.UnitPrice != 10.50 || line.LineTotal != 10.50 {
		t.Errorf("Unexpected line: %+v", line)
	}
}

// TestNormalize_MatchFailure_DropsTheLine tests collaborator error degradation
func TestNormalize_MatchFailure_DropsTheLine(t *testing.T) {
	extractor := &MockExtractor{
		MatchMenuItemFunc: func(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error) {
			return "", false, errors.New("collaborator down")
		},
	}
	normalizer := NewItemNormalizer(extractor)

	result := normalizer.Normalize(context.Background(), testCatalog(), map[string]int{"cheeseburger": 1})

	if len(result) != 0 {
		t.Errorf("Expected no lines when every match fails, got %v", result)
	}
}

// TestNormalize_MatchToUnpricedName_DropsTheLine tests the catalog re-check
func TestNormalize_MatchToUnpricedName_DropsTheLine(t *testing.T) {
	extractor := &MockExtractor{
		MatchMenuItemFunc: func(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error) {
			return "Phantom Special", true, nil
		},
	}
	normalizer := NewItemNormalizer(extractor)

	result := normalizer.Normalize(context.Background(), testCatalog(), map[string]int{"special": 1})

	if len(result) != 0 {
		t.Errorf("Expected no lines for a name the catalog does not price, got %v", result)
	}
}

// TestNormalize_ClampsQuantityAndMergesDuplicates tests quantity handling
func TestNormalize_ClampsQuantityAndMergesDuplicates(t *testing.T) {
	extractor := &MockExtractor{
		MatchMenuItemFunc: func(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error) {
			return "Classic Cheeseburger", true, nil
		},
	}
	normalizer := NewItemNormalizer(extractor)

	// Both raw names resolve to the same canonical item; one has a bad quantity.
	result := normalizer.Normalize(context.Background(), testCatalog(), map[string]int{
		"cheeseburger": 0,
		"burger":       2,
	})

	line := result["Classic Cheeseburger"]
	if line.Quantity != 3 {
		t.Errorf("Expected clamped and merged quantity 3, got %d", line.Quantity)
	}
	if line.LineTotal != 31.50 {
		t.Errorf("Expected line total 31.50, got %v", line.LineTotal)
	}
}
