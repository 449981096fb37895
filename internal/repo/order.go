package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, id ASC") }).
		Preload("User").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, id ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items.Product").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets the new status and appends the history entry. The
// history is append-only; rows are never rewritten.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, status, note string) error {
	tx := r.DB.WithContext(ctx)

	res := tx.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return tx.Create(&models.OrderStatusEvent{
		OrderID: orderID,
		Status:  status,
		Date:    time.Now().UTC(),
		Note:    note,
	}).Error
}

func (r *GormRepo) SetPaymentIntent(ctx context.Context, orderID uint, intentID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_intent_id", intentID).Error
}
