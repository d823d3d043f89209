package postgres

import (
	"context"
	"sort"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.MenuStore = (*MenuRepository)(nil)

// MenuRepository struct - Secondary/Driven adapter for PostgreSQL
type MenuRepository struct {
	dbGorm *gorm.DB
}

// NewMenuRepository func - Creates new PostgreSQL repository
func NewMenuRepository(dbGorm *gorm.DB) *MenuRepository {
	return &MenuRepository{
		dbGorm: dbGorm,
	}
}

// GetMenu func - Loads the catalog grouped into the drink section and the
// food sections ordered by section name. Drinks come first so price lookups
// and rendering scan them before the food sections.
func (p *MenuRepository) GetMenu(ctx context.Context) (domain.Menu, error) {
	var records []domain.MenuRecord
	if err := p.dbGorm.WithContext(ctx).Order("section ASC, name ASC").Find(&records).Error; err != nil {
		logrus.Errorln(err)
		return domain.Menu{}, err
	}

	menu := domain.Menu{
		Drinks: domain.MenuSection{Name: "Drinks", Items: map[string]domain.MenuItem{}},
	}
	foodSections := make(map[string]*domain.MenuSection)
	for _, record := range records {
		if record.Name == nil || record.Price == nil || record.Category == nil {
			continue
		}
		if *record.Category == domain.MenuCategoryDrink {
			if record.Section != nil {
				menu.Drinks.Name = *record.Section
			}
			menu.Drinks.Items[*record.Name] = domain.MenuItem{Price: *record.Price}
			continue
		}
		sectionName := "Food"
		if record.Section != nil {
			sectionName = *record.Section
		}
		section, ok := foodSections[sectionName]
		if !ok {
			section = &domain.MenuSection{Name: sectionName, Items: map[string]domain.MenuItem{}}
			foodSections[sectionName] = section
		}
		section.Items[*record.Name] = domain.MenuItem{Price: *record.Price}
	}

	names := make([]string, 0, len(foodSections))
	for name := range foodSections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		menu.Food = append(menu.Food, *foodSections[name])
	}
	return menu, nil
}
