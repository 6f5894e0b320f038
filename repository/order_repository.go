package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// OrderRepository defines data access for orders and order items. Lifecycle
// transitions run inside InTransaction so the item mutation and the order
// aggregate refold commit atomically.
type OrderRepository interface {
	InTransaction(ctx context.Context, fn func(OrderRepository) error) error

	CreateOrder(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error

	FindItemByID(ctx context.Context, itemID uuid.UUID) (*models.OrderItem, error)
	UpdateItem(ctx context.Context, item *models.OrderItem) error
	ItemStatuses(ctx context.Context, orderID uuid.UUID) ([]string, error)
	FindItemsBySeller(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.OrderItem, int64, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) InTransaction(ctx context.Context, fn func(OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormOrderRepository{db: tx})
	})
}

func (r *GormOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("OrderItems").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("OrderItems").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *GormOrderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *GormOrderRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Product").
		First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem persists an item mutation. seller_id is omitted: it is a
// creation-time snapshot and must never change.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).
		Omit("seller_id", "created_at", "Order", "Product").
		Save(item).Error
}

func (r *GormOrderRepository) FindItemsBySeller(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.OrderItem, int64, error) {
	var items []models.OrderItem
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("seller_id = ?", sellerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Product").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *GormOrderRepository) ItemStatuses(ctx context.Context, orderID uuid.UUID) ([]string, error) {
	var statuses []string
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Pluck("status", &statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
