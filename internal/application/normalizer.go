package application

import (
	"context"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ItemNormalizer reconciles raw extracted item names against the catalog.
// Near-spelling matches are corrected to the canonical name; items with no
// reasonable match are dropped from the result. Retained lines get their
// unit price and line total filled from the menu snapshot.
type ItemNormalizer struct {
	extractor output.Extractor
}

// NewItemNormalizer func - Creates new item normalizer
func NewItemNormalizer(extractor output.Extractor) *ItemNormalizer {
	return &ItemNormalizer{
		extractor: extractor,
	}
}

// Normalize maps raw item name -> quantity pairs onto canonical order lines.
// A failed or not-found menu match drops the line; normalization never fails
// a turn. Quantities below 1 are clamped to 1.
func (n *ItemNormalizer) Normalize(ctx context.Context, menu domain.Menu, raw map[string]int) map[string]domain.OrderItemLine {
	normalized := make(map[string]domain.OrderItemLine, len(raw))

	for rawName, qty := range raw {
		canonical, found, err := n.extractor.MatchMenuItem(ctx, rawName, menu)
		if err != nil {
			// Degrade to a miss; the order simply won't contain this item.
			logrus.Warnf("Menu match failed for %q, dropping item: %v", rawName, err)
			continue
		}
		if !found {
			logrus.Infof("No menu match for %q, dropping item", rawName)
			continue
		}

		lookup, ok := menu.PriceOf(canonical)
		if !ok {
			// The collaborator corrected to a name the catalog doesn't carry.
			logrus.Warnf("Matched name %q is not priced in the catalog, dropping item", canonical)
			continue
		}
		if lookup.Ambiguous {
			logrus.Warnf("Item %q appears in more than one menu section, using %q pricing", canonical, lookup.Section)
		}

		if qty < 1 {
			qty = 1
		}
		if existing, dup := normalized[canonical]; dup {
			// Two raw names resolved to the same canonical item.
			qty += existing.Quantity
		}
		normalized[canonical] = domain.OrderItemLine{
			ItemName:  canonical,
			Quantity:  qty,
			UnitPrice: lookup.Price,
			LineTotal: lookup.Price * float64(qty),
		}
	}

	return normalized
}
