package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// NotificationRepository defines data access for notification inbox rows.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID, filter models.NotificationFilter, page, limit int) ([]models.Notification, int64, error)
	FindAll(ctx context.Context, filter models.NotificationFilter, page, limit int) ([]models.Notification, int64, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context, sellerID *uuid.UUID) (int64, error)
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func applyNotificationFilter(query *gorm.DB, filter models.NotificationFilter) *gorm.DB {
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.MessageMatch != "" {
		query = query.Where("message LIKE ?", "%"+filter.MessageMatch+"%")
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	return query
}

func (r *GormNotificationRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter models.NotificationFilter, page, limit int) ([]models.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("seller_id = ?", sellerID)
	query = applyNotificationFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Notification
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormNotificationRepository) FindAll(ctx context.Context, filter models.NotificationFilter, page, limit int) ([]models.Notification, int64, error) {
	query := applyNotificationFilter(r.db.WithContext(ctx).Model(&models.Notification{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Notification
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormNotificationRepository) Update(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *GormNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id).Error
}

func (r *GormNotificationRepository) CountUnread(ctx context.Context, sellerID *uuid.UUID) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_read = ?", false)
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
