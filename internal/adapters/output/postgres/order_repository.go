package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.OrderRepository = (*OrderRepository)(nil)

// OrderRepository struct - Secondary/Driven adapter for PostgreSQL
type OrderRepository struct {
	dbGorm *gorm.DB
}

// NewOrderRepository func - Creates new PostgreSQL repository
func NewOrderRepository(dbGorm *gorm.DB) *OrderRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &OrderRepository{
		dbGorm: dbGorm,
	}
}

// InsertOrder func - Persists one confirmed order with its lines
func (p *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	tx := p.dbGorm.WithContext(ctx).Begin()
	defer func() {
		tx.Rollback()
	}()
	// Line rows are created through the association, carrying the freshly
	// generated order ID.
	if err := tx.Create(order).Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("%w: %v", domain.ErrOrderNotPersisted, err)
	}
	if err := tx.Commit().Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("%w: %v", domain.ErrOrderNotPersisted, err)
	}
	logrus.Infof("Order %s persisted with %d lines", order.ID, len(order.Lines))
	return nil
}

// GetOrder func - Fetches a submitted order by ID
func (p *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		logrus.Errorln(err)
		return nil, domain.ErrInvalidRequest
	}

	var order domain.Order
	if err := p.dbGorm.WithContext(ctx).Where("id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}

	var lines []domain.OrderLine
	if err := p.dbGorm.WithContext(ctx).Where("order_id = ?", orderID).Find(&lines).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	response := domain.OrderResponse{
		ID:            order.ID,
		UserName:      order.UserName,
		UserPhone:     order.UserPhone,
		UserEmail:     order.UserEmail,
		PaymentMethod: order.PaymentMethod,
		OrderTotal:    order.OrderTotal,
		CreatedAt:     order.CreatedAt,
	}
	for _, line := range lines {
		response.Lines = append(response.Lines, domain.OrderLineResponse{
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return &response, nil
}
