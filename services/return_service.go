package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// ReturnService runs the post-delivery return sub-state machine. Customer
// operations are gated on order ownership, seller/admin operations on the
// item's seller snapshot.
type ReturnService interface {
	RequestReturn(ctx context.Context, caller Caller, itemID uuid.UUID, reason string, notes *string) (*models.OrderItem, *ServiceError)
	CancelReturn(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError)
	AcceptReturn(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError)
	RejectReturn(ctx context.Context, caller Caller, itemID uuid.UUID, notes *string) (*models.OrderItem, *ServiceError)
	MarkReturnReceived(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError)
	OverrideReturnStatus(ctx context.Context, caller Caller, itemID uuid.UUID, status string, notes *string) (*models.OrderItem, *ServiceError)
}

type returnServiceImpl struct {
	orders repository.OrderRepository
	events *EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

func NewReturnService(orders repository.OrderRepository, events *EventPublisher, logger *zap.Logger) ReturnService {
	return &returnServiceImpl{orders: orders, events: events, logger: logger, now: time.Now}
}

func (s *returnServiceImpl) RequestReturn(ctx context.Context, caller Caller, itemID uuid.UUID, reason string, notes *string) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleCustomer && caller.Role != models.RoleAdmin {
		return nil, forbidden("Customer access required")
	}

	item, svcErr := s.apply(ctx, caller, itemID, ownsOrder, func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanRequestReturn(item.Status, item.ReturnStatus, item.IsReturnEligible); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		now := s.now()
		item.ReturnStatus = lifecycle.ReturnRequested
		item.ReturnReason = &reason
		item.ReturnNotes = notes
		item.ReturnRequestedAt = &now
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, caller, item, "return_requested")
	return item, nil
}

// CancelReturn fully resets the request: reason, notes and timestamp all
// revert to null.
func (s *returnServiceImpl) CancelReturn(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleCustomer && caller.Role != models.RoleAdmin {
		return nil, forbidden("Customer access required")
	}

	item, svcErr := s.apply(ctx, caller, itemID, ownsOrder, func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanCancelReturn(item.ReturnStatus); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		item.ReturnStatus = lifecycle.ReturnNone
		item.ReturnReason = nil
		item.ReturnNotes = nil
		item.ReturnRequestedAt = nil
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, caller, item, "return_cancelled")
	return item, nil
}

func (s *returnServiceImpl) AcceptReturn(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError) {
	return s.decide(ctx, caller, itemID, "return_accepted", func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanAcceptReturn(item.ReturnStatus); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		now := s.now()
		item.ReturnStatus = lifecycle.ReturnAccepted
		item.ReturnProcessedAt = &now
		return nil
	})
}

func (s *returnServiceImpl) RejectReturn(ctx context.Context, caller Caller, itemID uuid.UUID, notes *string) (*models.OrderItem, *ServiceError) {
	return s.decide(ctx, caller, itemID, "return_rejected", func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanRejectReturn(item.ReturnStatus); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		now := s.now()
		item.ReturnStatus = lifecycle.ReturnRejected
		if notes != nil {
			item.ReturnNotes = notes
		}
		item.ReturnProcessedAt = &now
		return nil
	})
}

func (s *returnServiceImpl) MarkReturnReceived(ctx context.Context, caller Caller, itemID uuid.UUID) (*models.OrderItem, *ServiceError) {
	return s.decide(ctx, caller, itemID, "return_received", func(item *models.OrderItem) *ServiceError {
		if err := lifecycle.CanMarkReturnReceived(item.ReturnStatus); err != nil {
			return precondition(err.(*lifecycle.TransitionError))
		}
		now := s.now()
		item.ReturnStatus = lifecycle.ReturnReceived
		item.ReturnProcessedAt = &now
		return nil
	})
}

// OverrideReturnStatus is the admin escape hatch over the return machine.
// RefundProcessed is only reachable here. Timestamps already stamped by
// earlier transitions are left untouched.
func (s *returnServiceImpl) OverrideReturnStatus(ctx context.Context, caller Caller, itemID uuid.UUID, status string, notes *string) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, forbidden("Admin access required")
	}
	if !lifecycle.ValidReturnOverrideTarget(status) {
		return nil, badRequest("Invalid target return status: " + status)
	}

	item, svcErr := s.apply(ctx, caller, itemID, canFulfill, func(item *models.OrderItem) *ServiceError {
		item.ReturnStatus = status
		if notes != nil {
			item.ReturnNotes = notes
		}
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Warn("Admin return status override",
		zap.String("item_id", itemID.String()),
		zap.String("admin_id", caller.ID.String()),
		zap.String("return_status", status),
	)
	s.publish(ctx, caller, item, "return_status_overridden")
	return item, nil
}

// decide is the seller/admin half of the machine (accept, reject, receive).
func (s *returnServiceImpl) decide(ctx context.Context, caller Caller, itemID uuid.UUID, eventType string, mutate func(*models.OrderItem) *ServiceError) (*models.OrderItem, *ServiceError) {
	if caller.Role != models.RoleSeller && caller.Role != models.RoleAdmin {
		return nil, forbidden("Seller or admin access required")
	}

	item, svcErr := s.apply(ctx, caller, itemID, canFulfill, func(item *models.OrderItem) *ServiceError {
		return mutate(item)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, caller, item, eventType)
	return item, nil
}

// apply loads the item, runs the authorization predicate, mutates and
// saves, all inside one transaction. Return transitions never change the
// fulfillment status, so no aggregate refold is needed here.
func (s *returnServiceImpl) apply(ctx context.Context, caller Caller, itemID uuid.UUID, allowed func(Caller, *models.OrderItem) bool, mutate func(*models.OrderItem) *ServiceError) (*models.OrderItem, *ServiceError) {
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

		if !allowed(caller, found) {
			return notFound("Order item not found")
		}

		if svcErr := mutate(found); svcErr != nil {
			return svcErr
		}

		if err := repo.UpdateItem(ctx, found); err != nil {
			s.logger.Error("Failed to update order item", zap.Error(err))
			return internal("Failed to update order item")
		}

		item = found
		return nil
	})
	if err != nil {
		if se := asServiceError(err); se != nil {
			return nil, se
		}
		s.logger.Error("Return transaction failed", zap.Error(err))
		return nil, internal("Failed to update order item")
	}

	return item, nil
}

func (s *returnServiceImpl) publish(ctx context.Context, caller Caller, item *models.OrderItem, eventType string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, models.OrderEvent{
		EventType:    eventType,
		OrderID:      item.OrderID.String(),
		OrderItemID:  item.ID.String(),
		SellerID:     item.SellerID.String(),
		ActorID:      caller.ID.String(),
		ReturnStatus: item.ReturnStatus,
	})
}
