package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// NotificationService manages the persisted notification inbox. Sellers see
// only their own rows; admins see everything. Someone else's notification
// reads as not-found for a seller.
type NotificationService interface {
	SaveForSeller(ctx context.Context, sellerID uuid.UUID, req models.SaveNotificationRequest) (*models.Notification, *ServiceError)
	ListForSeller(ctx context.Context, sellerID uuid.UUID, shorthand string, page, limit int) ([]models.Notification, int64, *ServiceError)
	MarkRead(ctx context.Context, caller Caller, id uuid.UUID, isRead bool) (*models.Notification, *ServiceError)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) *ServiceError
	UnreadCount(ctx context.Context, caller Caller) (int64, *ServiceError)

	Create(ctx context.Context, caller Caller, req models.CreateNotificationRequest) (*models.Notification, *ServiceError)
	ListAll(ctx context.Context, caller Caller, typeFilter string, isRead *bool, page, limit int) ([]models.Notification, int64, *ServiceError)
}

type notificationServiceImpl struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notificationServiceImpl{notifications: notifications, logger: logger}
}

func (s *notificationServiceImpl) SaveForSeller(ctx context.Context, sellerID uuid.UUID, req models.SaveNotificationRequest) (*models.Notification, *ServiceError) {
	if !models.ValidNotificationType(req.Type) {
		return nil, badRequest("Invalid notification type: " + req.Type)
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	n := &models.Notification{
		Type:      req.Type,
		Message:   req.Message,
		SellerID:  &sellerID,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		SKU:       req.SKU,
		Size:      req.Size,
		Color:     req.Color,
		Priority:  priority,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("Failed to save notification", zap.Error(err))
		return nil, internal("Failed to save notification")
	}
	return n, nil
}

// shorthandFilter translates the storefront's filter values. OOS and
// low_stock both select the stock type and match on the message text.
func shorthandFilter(shorthand string) (models.NotificationFilter, bool) {
	switch shorthand {
	case "":
		return models.NotificationFilter{}, true
	case "OOS":
		return models.NotificationFilter{Type: models.NotificationStock, MessageMatch: "Out of Stock"}, true
	case "low_stock":
		return models.NotificationFilter{Type: models.NotificationStock, MessageMatch: "Low Stock"}, true
	case "approval", "order", "payment", "dispute", "return":
		return models.NotificationFilter{Type: shorthand}, true
	}
	return models.NotificationFilter{}, false
}

func (s *notificationServiceImpl) ListForSeller(ctx context.Context, sellerID uuid.UUID, shorthand string, page, limit int) ([]models.Notification, int64, *ServiceError) {
	filter, ok := shorthandFilter(shorthand)
	if !ok {
		return nil, 0, badRequest("Invalid filter: " + shorthand)
	}

	rows, total, err := s.notifications.FindBySeller(ctx, sellerID, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, 0, internal("Failed to list notifications")
	}
	return rows, total, nil
}

// load fetches a notification and enforces the caller's scope. A seller
// asking for a row that isn't theirs gets not-found.
func (s *notificationServiceImpl) load(ctx context.Context, caller Caller, id uuid.UUID) (*models.Notification, *ServiceError) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Notification not found")
		}
		s.logger.Error("Failed to load notification", zap.Error(err))
		return nil, internal("Failed to load notification")
	}
	if caller.Role != models.RoleAdmin {
		if n.SellerID == nil || *n.SellerID != caller.ID {
			return nil, notFound("Notification not found")
		}
	}
	return n, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, caller Caller, id uuid.UUID, isRead bool) (*models.Notification, *ServiceError) {
	n, svcErr := s.load(ctx, caller, id)
	if svcErr != nil {
		return nil, svcErr
	}

	n.IsRead = isRead
	if err := s.notifications.Update(ctx, n); err != nil {
		s.logger.Error("Failed to update notification", zap.Error(err))
		return nil, internal("Failed to update notification")
	}
	return n, nil
}

func (s *notificationServiceImpl) Delete(ctx context.Context, caller Caller, id uuid.UUID) *ServiceError {
	n, svcErr := s.load(ctx, caller, id)
	if svcErr != nil {
		return svcErr
	}

	if err := s.notifications.Delete(ctx, n.ID); err != nil {
		s.logger.Error("Failed to delete notification", zap.Error(err))
		return internal("Failed to delete notification")
	}
	return nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, caller Caller) (int64, *ServiceError) {
	var scope *uuid.UUID
	if caller.Role != models.RoleAdmin {
		id := caller.ID
		scope = &id
	}

	count, err := s.notifications.CountUnread(ctx, scope)
	if err != nil {
		s.logger.Error("Failed to count notifications", zap.Error(err))
		return 0, internal("Failed to count notifications")
	}
	return count, nil
}

func (s *notificationServiceImpl) Create(ctx context.Context, caller Caller, req models.CreateNotificationRequest) (*models.Notification, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, forbidden("Admin access required")
	}
	if !models.ValidNotificationType(req.Type) {
		return nil, badRequest("Invalid notification type: " + req.Type)
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	n := &models.Notification{
		Type:      req.Type,
		Message:   req.Message,
		SellerID:  req.SellerID,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Priority:  priority,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("Failed to create notification", zap.Error(err))
		return nil, internal("Failed to create notification")
	}
	return n, nil
}

func (s *notificationServiceImpl) ListAll(ctx context.Context, caller Caller, typeFilter string, isRead *bool, page, limit int) ([]models.Notification, int64, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, 0, forbidden("Admin access required")
	}
	if typeFilter != "" && !models.ValidNotificationType(typeFilter) {
		return nil, 0, badRequest("Invalid notification type: " + typeFilter)
	}

	rows, total, err := s.notifications.FindAll(ctx, models.NotificationFilter{Type: typeFilter, IsRead: isRead}, page, limit)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, 0, internal("Failed to list notifications")
	}
	return rows, total, nil
}
