package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategory type
type MenuCategory string

const (
	// MenuCategoryDrink const
	MenuCategoryDrink MenuCategory = "drink"
	// MenuCategoryFood const
	MenuCategoryFood MenuCategory = "food"
)

// MenuItem holds the sellable attributes of one catalog entry.
type MenuItem struct {
	Price float64
}

// MenuSection is one named block of the menu, keyed by canonical item name.
type MenuSection struct {
	Name  string
	Items map[string]MenuItem
}

// Menu is a read-only snapshot of the catalog. The drink section is scanned
// before the food sections during price lookup, matching catalog iteration
// order; callers are told when a name appears in more than one section.
type Menu struct {
	Drinks MenuSection
	Food   []MenuSection
}

// PriceLookup is the result of resolving one canonical item name.
type PriceLookup struct {
	Price     float64
	Section   string
	Ambiguous bool // name also present in another section
}

// PriceOf resolves an item name against every section. The first match in
// scan order wins; Ambiguous is set when later sections also carry the name.
func (m *Menu) PriceOf(name string) (PriceLookup, bool) {
	var (
		result PriceLookup
		found  bool
	)
	consider := func(section string, item MenuItem, ok bool) {
		if !ok {
			return
		}
		if !found {
			result = PriceLookup{Price: item.Price, Section: section}
			found = true
			return
		}
		result.Ambiguous = true
	}

	item, ok := m.Drinks.Items[name]
	consider(m.Drinks.Name, item, ok)
	for _, section := range m.Food {
		item, ok := section.Items[name]
		consider(section.Name, item, ok)
	}
	return result, found
}

// ItemNames returns every canonical name on the menu, sorted.
func (m *Menu) ItemNames() []string {
	seen := map[string]struct{}{}
	for name := range m.Drinks.Items {
		seen[name] = struct{}{}
	}
	for _, section := range m.Food {
		for name := range section.Items {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render produces the customer-facing menu text. Sections keep catalog
// order; items within a section are sorted for a stable rendering.
func (m *Menu) Render() string {
	var b strings.Builder
	renderSection := func(section MenuSection) {
		if len(section.Items) == 0 {
			return
		}
		fmt.Fprintf(&b, "== %s ==\n", section.Name)
		names := make([]string, 0, len(section.Items))
		for name := range section.Items {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s - $%.2f\n", name, section.Items[name].Price)
		}
	}
	renderSection(m.Drinks)
	for _, section := range m.Food {
		renderSection(section)
	}
	return strings.TrimRight(b.String(), "\n")
}

// MenuRecord struct - Core domain entity, one persisted catalog row
type MenuRecord struct {
	ID        *uuid.UUID    `gorm:"type:uuid;primary_key;"`
	Name      *string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_menu_name_section;"`
	Price     *float64      `gorm:"type:numeric(10,2);not null;"`
	Section   *string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_menu_name_section;"`
	Category  *MenuCategory `gorm:"type:varchar(5);not null;"`
	CreatedAt *time.Time    `gorm:"type:timestamp"`
	UpdatedAt *time.Time    `gorm:"type:timestamp"`
}

// TableName func
func (r *MenuRecord) TableName() string {
	return "menu_items"
}

// BeforeCreate hook
func (r *MenuRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// FAQEntry struct - Core domain entity, one category of business information
// used as grounding context when answering general questions
type FAQEntry struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Category  *string    `gorm:"type:varchar(100);not null;uniqueIndex;"`
	Content   *string    `gorm:"type:TEXT;not null;"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (f *FAQEntry) TableName() string {
	return "faq_entries"
}

// BeforeCreate hook
func (f *FAQEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	f.ID = &id
	return nil
}
