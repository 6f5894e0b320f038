package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// FulfillmentService runs the seller/admin transitions of the order-item
// fulfillment state machine. Every successful transition refolds the order
// aggregate status inside the same transaction.
type FulfillmentService interface {
	AcceptItem(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError)
	RejectItem(ctx context.Context, caller Caller, itemID uuid.UUID, reason *string) (*models.OrderItem, *ServiceError)
	OverrideStatus(ctx context.Context, caller Caller, itemID uuid.UUID, status string, reason *string) (*models.OrderItem, *ServiceError)
}

type fulfillmentServiceImpl struct {
	orders repository.OrderRepository
	events *EventPublisher
	logger *zap.Logger
}

func NewFulfillmentService(orders repository.OrderRepository, events *EventPublisher, logger *zap.Logger) FulfillmentService {
	return &fulfillmentServiceImpl{orders: orders, events: events, logger: logger}
}

func (s *fulfillmentServiceImpl) AcceptItem(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError) {
	return s.transition(ctx, caller, itemID, "item_accepted", func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanAccept(item.Status); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		item.Status = lifecycle.StatusAccepted
		// Re-accepting a previously rejected item clears the old reason.
		item.RejectionReason = nil
		return nil
	})
}

func (s *fulfillmentServiceImpl) RejectItem(ctx context.Context, caller Caller, itemID uuid.UUID, reason *string) (*models.OrderItem, *ServiceError) {
	return s.transition(ctx, caller, itemID, "item_rejected", func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanReject(item.Status); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		item.Status = lifecycle.StatusRejected
		item.RejectionReason = reason
		return nil
	})
}

// OverrideStatus is the admin escape hatch: any current status to any of
// the named targets, no legality check. It is logged separately so manual
// interventions stay auditable.
func (s *fulfillmentServiceImpl) OverrideStatus(ctx context.Context, caller Caller, itemID uuid.UUID, status string, reason *string) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, forbidden("Admin access required")
	}
	if !lifecycle.ValidOverrideTarget(status) {
		return nil, badRequest("Invalid target status: " + status)
	}

	item, svcErr := s.apply(ctx, caller, itemID, func(item *models.OrderItem) *ServiceError {
		item.Status = status
		if reason != nil {
			item.RejectionReason = reason
		}
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Warn("Admin status override",
		zap.String("item_id", itemID.String()),
		zap.String("admin_id", caller.ID.String()),
		zap.String("status", status),
	)
	s.publish(ctx, caller, item, "item_status_overridden")
	return item, nil
}

// transition runs one rule-checked fulfillment transition.
func (s *fulfillmentServiceImpl) transition(ctx context.Context, caller Caller, itemID uuid.UUID, eventType string, mutate func(*models.OrderItem) *ServiceError) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleSeller && caller.Role != models.RoleAdmin {
		return nil, forbidden("Seller or admin access required")
	}

	item, svcErr := s.apply(ctx, caller, itemID, mutate)
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, caller, item, eventType)
	return item, nil
}

// apply looks the item up, authorizes the caller, mutates, and refolds the
// order status, all inside one transaction.
func (s *fulfillmentServiceImpl) apply(ctx context.Context, caller Caller, itemID uuid.UUID, mutate func(*models.OrderItem) *ServiceError) (*models.OrderItem, *ServiceError) {
	var item *models.OrderItem

	err := s.orders.InTransaction(ctx, func(repo repository.OrderRepository) error {
		found, err := repo.FindItemByID(ctx, itemID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return notFound("Order item not found")
			}
			s.logger.Error("Failed to load order item", zap.Error(err))
			return internal("Failed to load order item")
		}

		// Cross-seller access reads as not-found so item existence is
		// not leaked.
		if !canFulfill(caller, found) {
			return notFound("Order item not found")
		}

		if svcErr := mutate(found); svcErr != nil {
			return svcErr
		}

		if err := repo.UpdateItem(ctx, found); err != nil {
			s.logger.Error("Failed to update order item", zap.Error(err))
			return internal("Failed to update order item")
		}

		statuses, err := repo.ItemStatuses(ctx, found.OrderID)
		if err != nil {
			s.logger.Error("Failed to load sibling item statuses", zap.Error(err))
			return internal("Failed to update order status")
		}
		if err := repo.UpdateOrderStatus(ctx, found.OrderID, lifecycle.DeriveOrderStatus(statuses)); err != nil {
			s.logger.Error("Failed to update order status", zap.Error(err))
			return internal("Failed to update order status")
		}

		item = found
		return nil
	})
	if err != nil {
		if se := asServiceError(err); se != nil {
			return nil, se
		}
		s.logger.Error("Fulfillment transaction failed", zap.Error(err))
		return nil, internal("Failed to update order item")
	}

	return item, nil
}

func (s *fulfillmentServiceImpl) publish(ctx context.Context, caller Caller, item *models.OrderItem, eventType string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, models.OrderEvent{
		EventType:   eventType,
		OrderID:     item.OrderID.String(),
		OrderItemID: item.ID.String(),
		SellerID:    item.SellerID.String(),
		ActorID:     caller.ID.String(),
		Status:      item.Status,
	})
}
