package postgres

import (
	"context"
	"errors"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.FAQStore = (*FAQRepository)(nil)

// FAQRepository struct - Secondary/Driven adapter for PostgreSQL
type FAQRepository struct {
	dbGorm *gorm.DB
}

// NewFAQRepository func - Creates new PostgreSQL repository
func NewFAQRepository(dbGorm *gorm.DB) *FAQRepository {
	return &FAQRepository{
		dbGorm: dbGorm,
	}
}

// Categories func - Returns the distinct FAQ category names, used as the
// label set for question classification
func (p *FAQRepository) Categories(ctx context.Context) ([]string, error) {
	var entry domain.FAQEntry
	var categories []string
	if err := p.dbGorm.WithContext(ctx).Table(entry.TableName()).
		Order("category ASC").Pluck("category", &categories).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return categories, nil
}

// ReadAll func - Returns the content stored under one category, or empty
// when the category is unknown
func (p *FAQRepository) ReadAll(ctx context.Context, category string) (string, error) {
	var entry domain.FAQEntry
	err := p.dbGorm.WithContext(ctx).Where("category = ?", category).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		logrus.Errorln(err)
		return "", err
	}
	if entry.Content == nil {
		return "", nil
	}
	return *entry.Content, nil
}
