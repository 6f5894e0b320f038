package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// StatusCount is one row of a grouped count.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository runs the admin reporting aggregates.
type AnalyticsRepository interface {
	Revenue(ctx context.Context) (float64, error)
	OrdersByStatus(ctx context.Context) ([]StatusCount, error)
	ItemsByStatus(ctx context.Context) ([]StatusCount, error)
	ItemsByReturnStatus(ctx context.Context) ([]StatusCount, error)
	PendingSellerCount(ctx context.Context) (int64, error)
}

type GormAnalyticsRepository struct {
	db *gorm.DB
}

func NewGormAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// Revenue sums price*quantity over items that reached Accepted or later.
// Pending, Rejected and Cancelled items do not count.
func (r *GormAnalyticsRepository) Revenue(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("SUM(price * quantity)").
		Where("status IN ?", []string{"Accepted", "Shipped", "Delivered"}).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *GormAnalyticsRepository) OrdersByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.groupCount(ctx, &models.Order{})
}

func (r *GormAnalyticsRepository) ItemsByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.groupCount(ctx, &models.OrderItem{})
}

func (r *GormAnalyticsRepository) ItemsByReturnStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("return_status AS status, COUNT(*) AS count").
		Group("return_status").
		Scan(&counts).Error
	return counts, err
}

func (r *GormAnalyticsRepository) PendingSellerCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ? AND is_approved = false", models.RoleSeller).
		Count(&count).Error
	return count, err
}

func (r *GormAnalyticsRepository) groupCount(ctx context.Context, model interface{}) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
