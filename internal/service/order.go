package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/events"
	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

// CODShippingCharge is the flat surcharge added to cash-on-delivery orders.
const CODShippingCharge = 100

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// CreateOrder validates every requested line against current stock, persists
// the order with its placement history entry, then decrements stock per item.
// The stock check happens before anything is written, so a rejected order
// mutates nothing. The decrements run after the order exists: each one is an
// atomic per-row update, but there is no cross-item transaction and no
// rollback, and the check-then-decrement pair is not a single conditional
// update.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: no order items", ErrValidation)
	}
	if req.PaymentMethod != models.PaymentCOD && req.PaymentMethod != models.PaymentOnline {
		return nil, fmt.Errorf("%w: payment method must be COD or ONLINE", ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}

		product, err := s.Repo.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %d not found", ErrNotFound, line.ProductID)
			}
			return nil, err
		}

		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for %s. Available: %d",
				ErrValidation, product.Title, product.Stock)
		}

		total += product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	var shippingCharges float64
	status := models.OrderStatusPending
	note := "Order placed"
	if req.PaymentMethod == models.PaymentCOD {
		shippingCharges = CODShippingCharge
		status = models.OrderStatusPendingCOD
		note = "Order placed with COD"
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Total:           total + shippingCharges,
		ShippingCharges: shippingCharges,
		Status:          status,
		StatusHistory: []models.OrderStatusEvent{
			{Status: status, Date: time.Now().UTC(), Note: note},
		},
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx)
	for _, item := range order.Items {
		if err := s.Repo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			l.Error("stock_decrement_failed",
				"order_id", order.ID, "product_id", item.ProductID, "error", err)
		}
	}

	publish(ctx, s.Producer, events.TopicOrderEvents, fmt.Sprint(order.ID), map[string]any{
		"type":    "order_placed",
		"orderID": order.ID,
		"userID":  userID,
		"total":   order.Total,
	})

	return s.Repo.GetOrder(ctx, order.ID)
}

// GetOrder returns the order with user and product fields expanded. Only the
// owner or an admin may read it.
func (s *OrderService) GetOrder(ctx context.Context, id, requesterID uint, requesterRole string) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	if order.UserID != requesterID && requesterRole != models.RoleAdmin {
		return nil, fmt.Errorf("%w: not authorized", ErrForbidden)
	}

	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListAllOrders(ctx)
}

// UpdateStatus transitions an order to any of the six statuses and appends a
// history entry. Transitions are not ordered: nothing stops a Delivered order
// from going back to Pending.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	err := s.Repo.UpdateOrderStatus(ctx, orderID, status, "Status updated to "+status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	publish(ctx, s.Producer, events.TopicOrderEvents, fmt.Sprint(orderID), map[string]any{
		"type":    "order_status_updated",
		"orderID": orderID,
		"status":  status,
	})

	return s.Repo.GetOrder(ctx, orderID)
}
