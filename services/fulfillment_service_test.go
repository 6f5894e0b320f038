package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// ---- mock order repository ----

type mockOrderRepo struct {
	item        *models.OrderItem
	findItemErr error

	order    *models.Order
	orderErr error

	statuses    []string
	statusesErr error

	updatedItem        *models.OrderItem
	updateItemErr      error
	updatedOrderStatus string
}

func (m *mockOrderRepo) InTransaction(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(m)
}
func (m *mockOrderRepo) CreateOrder(_ context.Context, _ *models.Order) error { return nil }
func (m *mockOrderRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Order, error) {
	if m.order == nil && m.orderErr == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.order, m.orderErr
}
func (m *mockOrderRepo) FindByIDAndUserID(_ context.Context, _, userID uuid.UUID) (*models.Order, error) {
	if m.order == nil || m.order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return m.order, m.orderErr
}
func (m *mockOrderRepo) FindByUserID(_ context.Context, _ uuid.UUID, _, _ int) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (m *mockOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (m *mockOrderRepo) UpdateOrderStatus(_ context.Context, _ uuid.UUID, status string) error {
	m.updatedOrderStatus = status
	return nil
}
func (m *mockOrderRepo) FindItemByID(_ context.Context, _ uuid.UUID) (*models.OrderItem, error) {
	return m.item, m.findItemErr
}
func (m *mockOrderRepo) UpdateItem(_ context.Context, item *models.OrderItem) error {
	m.updatedItem = item
	return m.updateItemErr
}
func (m *mockOrderRepo) ItemStatuses(_ context.Context, _ uuid.UUID) ([]string, error) {
	if m.statuses != nil || m.statusesErr != nil {
		return m.statuses, m.statusesErr
	}
	if m.updatedItem != nil {
		return []string{m.updatedItem.Status}, nil
	}
	return nil, nil
}
func (m *mockOrderRepo) FindItemsBySeller(_ context.Context, _ uuid.UUID, _, _ int) ([]models.OrderItem, int64, error) {
	return nil, 0, nil
}

func pendingItem(sellerID uuid.UUID) *models.OrderItem {
	return &models.OrderItem{
		ID:           uuid.New(),
		OrderID:      uuid.New(),
		SellerID:     sellerID,
		Status:       lifecycle.StatusPending,
		ReturnStatus: lifecycle.ReturnNone,
	}
}

func TestAcceptItem(t *testing.T) {
	sellerID := uuid.New()
	seller := Caller{ID: sellerID, Role: models.RoleSeller}
	ctx := context.Background()

	t.Run("Pending item accepted", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(sellerID)}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		item, svcErr := svc.AcceptItem(ctx, seller, repo.item.ID)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusAccepted, item.Status)
		assert.NotNil(t, repo.updatedItem)
	})

	t.Run("Re-accepting a rejected item clears the reason", func(t *testing.T) {
		reason := "out of stock"
		item := pendingItem(sellerID)
		item.Status = lifecycle.StatusRejected
		item.RejectionReason = &reason
		repo := &mockOrderRepo{item: item}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		got, svcErr := svc.AcceptItem(ctx, seller, item.ID)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusAccepted, got.Status)
		assert.Nil(t, got.RejectionReason)
	})

	t.Run("Shipped item cannot be accepted", func(t *testing.T) {
		item := pendingItem(sellerID)
		item.Status = lifecycle.StatusShipped
		repo := &mockOrderRepo{item: item}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.AcceptItem(ctx, seller, item.ID)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, lifecycle.StatusShipped)
		assert.Nil(t, repo.updatedItem)
	})

	t.Run("Another seller's item reads as not found", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(uuid.New())}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.AcceptItem(ctx, seller, repo.item.ID)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	})

	t.Run("Missing item is not found", func(t *testing.T) {
		repo := &mockOrderRepo{findItemErr: gorm.ErrRecordNotFound}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.AcceptItem(ctx, seller, uuid.New())
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	})

	t.Run("Customer role is forbidden", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(sellerID)}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.AcceptItem(ctx, Caller{ID: uuid.New(), Role: models.RoleCustomer}, repo.item.ID)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})

	t.Run("Admin can act on any seller's item", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(uuid.New())}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		item, svcErr := svc.AcceptItem(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin}, repo.item.ID)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusAccepted, item.Status)
	})
}

func TestRejectItem(t *testing.T) {
	sellerID := uuid.New()
	seller := Caller{ID: sellerID, Role: models.RoleSeller}
	ctx := context.Background()

	t.Run("Reason is stored verbatim", func(t *testing.T) {
		reason := "damaged in warehouse"
		repo := &mockOrderRepo{item: pendingItem(sellerID)}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		item, svcErr := svc.RejectItem(ctx, seller, repo.item.ID, &reason)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusRejected, item.Status)
		assert.Equal(t, &reason, item.RejectionReason)
	})

	t.Run("Reason is optional", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(sellerID)}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		item, svcErr := svc.RejectItem(ctx, seller, repo.item.ID, nil)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusRejected, item.Status)
		assert.Nil(t, item.RejectionReason)
	})

	t.Run("Delivered item cannot be rejected", func(t *testing.T) {
		item := pendingItem(sellerID)
		item.Status = lifecycle.StatusDelivered
		repo := &mockOrderRepo{item: item}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.RejectItem(ctx, seller, item.ID, nil)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, lifecycle.StatusDelivered)
	})
}

func TestOverrideStatus(t *testing.T) {
	admin := Caller{ID: uuid.New(), Role: models.RoleAdmin}
	ctx := context.Background()

	t.Run("Seller cannot override", func(t *testing.T) {
		sellerID := uuid.New()
		repo := &mockOrderRepo{item: pendingItem(sellerID)}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.OverrideStatus(ctx, Caller{ID: sellerID, Role: models.RoleSeller}, repo.item.ID, lifecycle.StatusShipped, nil)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})

	t.Run("Invalid target is rejected", func(t *testing.T) {
		repo := &mockOrderRepo{item: pendingItem(uuid.New())}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.OverrideStatus(ctx, admin, repo.item.ID, "Teleported", nil)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Override skips transition rules", func(t *testing.T) {
		item := pendingItem(uuid.New())
		item.Status = lifecycle.StatusRejected
		repo := &mockOrderRepo{item: item}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		got, svcErr := svc.OverrideStatus(ctx, admin, item.ID, lifecycle.StatusDelivered, nil)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.StatusDelivered, got.Status)
	})
}

func TestOrderStatusRefold(t *testing.T) {
	sellerID := uuid.New()
	seller := Caller{ID: sellerID, Role: models.RoleSeller}
	ctx := context.Background()

	t.Run("Rejecting the last live item cancels the order", func(t *testing.T) {
		item := pendingItem(sellerID)
		repo := &mockOrderRepo{
			item:     item,
			statuses: []string{lifecycle.StatusRejected, lifecycle.StatusRejected},
		}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.RejectItem(ctx, seller, item.ID, nil)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.OrderCancelled, repo.updatedOrderStatus)
	})

	t.Run("Mixed statuses keep the order active", func(t *testing.T) {
		item := pendingItem(sellerID)
		repo := &mockOrderRepo{
			item:     item,
			statuses: []string{lifecycle.StatusRejected, lifecycle.StatusDelivered},
		}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.RejectItem(ctx, seller, item.ID, nil)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.OrderActive, repo.updatedOrderStatus)
	})

	t.Run("Delivering every item completes the order", func(t *testing.T) {
		item := pendingItem(sellerID)
		item.Status = lifecycle.StatusShipped
		repo := &mockOrderRepo{
			item:     item,
			statuses: []string{lifecycle.StatusDelivered, lifecycle.StatusDelivered},
		}
		svc := NewFulfillmentService(repo, nil, zap.NewNop())

		_, svcErr := svc.OverrideStatus(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin}, item.ID, lifecycle.StatusDelivered, nil)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.OrderCompleted, repo.updatedOrderStatus)
	})
}
