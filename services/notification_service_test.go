package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
)

type mockNotificationRepo struct {
	row *models.Notification

	created     *models.Notification
	updated     *models.Notification
	deletedID   uuid.UUID
	unreadCount int64
	unreadScope *uuid.UUID

	lastSellerID uuid.UUID
	lastFilter   models.NotificationFilter
}

func (m *mockNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	m.created = n
	return nil
}
func (m *mockNotificationRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Notification, error) {
	if m.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.row, nil
}
func (m *mockNotificationRepo) FindBySeller(_ context.Context, sellerID uuid.UUID, filter models.NotificationFilter, _, _ int) ([]models.Notification, int64, error) {
	m.lastSellerID = sellerID
	m.lastFilter = filter
	if m.row != nil {
		return []models.Notification{*m.row}, 1, nil
	}
	return nil, 0, nil
}
func (m *mockNotificationRepo) FindAll(_ context.Context, filter models.NotificationFilter, _, _ int) ([]models.Notification, int64, error) {
	m.lastFilter = filter
	return nil, 0, nil
}
func (m *mockNotificationRepo) Update(_ context.Context, n *models.Notification) error {
	m.updated = n
	return nil
}
func (m *mockNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deletedID = id
	return nil
}
func (m *mockNotificationRepo) CountUnread(_ context.Context, sellerID *uuid.UUID) (int64, error) {
	m.unreadScope = sellerID
	return m.unreadCount, nil
}

func sellerNotification(sellerID uuid.UUID) *models.Notification {
	return &models.Notification{
		ID:       uuid.New(),
		Type:     models.NotificationStock,
		Message:  "Out of Stock: SKU-1",
		SellerID: &sellerID,
		Priority: models.PriorityHigh,
	}
}

func TestSaveNotification(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Defaults priority to medium", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		svc := NewNotificationService(repo, zap.NewNop())

		n, svcErr := svc.SaveForSeller(ctx, sellerID, models.SaveNotificationRequest{
			Type:    models.NotificationStock,
			Message: "Low Stock: SKU-2",
		})
		assert.Nil(t, svcErr)
		assert.Equal(t, models.PriorityMedium, n.Priority)
		assert.Equal(t, sellerID, *repo.created.SellerID)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		svc := NewNotificationService(&mockNotificationRepo{}, zap.NewNop())

		_, svcErr := svc.SaveForSeller(ctx, sellerID, models.SaveNotificationRequest{Type: "gossip"})
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})
}

func TestListForSeller_ShorthandFilters(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("OOS maps to stock plus message match", func(t *testing.T) {
		repo := &mockNotificationRepo{row: sellerNotification(sellerID)}
		svc := NewNotificationService(repo, zap.NewNop())

		rows, total, svcErr := svc.ListForSeller(ctx, sellerID, "OOS", 1, 10)
		assert.Nil(t, svcErr)
		assert.Equal(t, int64(1), total)
		assert.Len(t, rows, 1)
		assert.Equal(t, models.NotificationStock, repo.lastFilter.Type)
		assert.Equal(t, "Out of Stock", repo.lastFilter.MessageMatch)
		assert.Equal(t, sellerID, repo.lastSellerID)
	})

	t.Run("low_stock maps to stock plus message match", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		svc := NewNotificationService(repo, zap.NewNop())

		_, _, svcErr := svc.ListForSeller(ctx, sellerID, "low_stock", 1, 10)
		assert.Nil(t, svcErr)
		assert.Equal(t, models.NotificationStock, repo.lastFilter.Type)
		assert.Equal(t, "Low Stock", repo.lastFilter.MessageMatch)
	})

	t.Run("Unknown shorthand is rejected", func(t *testing.T) {
		svc := NewNotificationService(&mockNotificationRepo{}, zap.NewNop())

		_, _, svcErr := svc.ListForSeller(ctx, sellerID, "everything", 1, 10)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Owner can flip the read flag", func(t *testing.T) {
		repo := &mockNotificationRepo{row: sellerNotification(sellerID)}
		svc := NewNotificationService(repo, zap.NewNop())

		n, svcErr := svc.MarkRead(ctx, Caller{ID: sellerID, Role: models.RoleSeller}, repo.row.ID, true)
		assert.Nil(t, svcErr)
		assert.True(t, n.IsRead)
		assert.NotNil(t, repo.updated)
	})

	t.Run("Someone else's notification reads as not found", func(t *testing.T) {
		repo := &mockNotificationRepo{row: sellerNotification(sellerID)}
		svc := NewNotificationService(repo, zap.NewNop())

		_, svcErr := svc.MarkRead(ctx, Caller{ID: uuid.New(), Role: models.RoleSeller}, repo.row.ID, true)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
		assert.Nil(t, repo.updated)
	})

	t.Run("Admin can touch any notification", func(t *testing.T) {
		repo := &mockNotificationRepo{row: sellerNotification(sellerID)}
		svc := NewNotificationService(repo, zap.NewNop())

		_, svcErr := svc.MarkRead(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin}, repo.row.ID, false)
		assert.Nil(t, svcErr)
	})
}

func TestUnreadCountScope(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Seller counts only their own rows", func(t *testing.T) {
		repo := &mockNotificationRepo{unreadCount: 4}
		svc := NewNotificationService(repo, zap.NewNop())

		count, svcErr := svc.UnreadCount(ctx, Caller{ID: sellerID, Role: models.RoleSeller})
		assert.Nil(t, svcErr)
		assert.Equal(t, int64(4), count)
		assert.NotNil(t, repo.unreadScope)
		assert.Equal(t, sellerID, *repo.unreadScope)
	})

	t.Run("Admin counts everything", func(t *testing.T) {
		repo := &mockNotificationRepo{unreadCount: 9}
		svc := NewNotificationService(repo, zap.NewNop())

		count, svcErr := svc.UnreadCount(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin})
		assert.Nil(t, svcErr)
		assert.Equal(t, int64(9), count)
		assert.Nil(t, repo.unreadScope)
	})
}

func TestAdminCreateNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("Seller cannot use the admin surface", func(t *testing.T) {
		svc := NewNotificationService(&mockNotificationRepo{}, zap.NewNop())

		_, svcErr := svc.Create(ctx, Caller{ID: uuid.New(), Role: models.RoleSeller}, models.CreateNotificationRequest{Type: models.NotificationApproval})
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})

	t.Run("Admin creates a targeted notification", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		svc := NewNotificationService(repo, zap.NewNop())
		target := uuid.New()

		n, svcErr := svc.Create(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin}, models.CreateNotificationRequest{
			Type:     models.NotificationApproval,
			Message:  "Your store was approved",
			SellerID: &target,
		})
		assert.Nil(t, svcErr)
		assert.Equal(t, target, *n.SellerID)
		assert.Equal(t, models.PriorityMedium, n.Priority)
	})
}

func TestEventPublisherStoresSellerNotification(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Item event lands in the seller inbox", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		p := NewEventPublisher(nil, nil, "", repo, zap.NewNop())

		p.Publish(ctx, models.OrderEvent{
			EventType:   "item_accepted",
			OrderID:     uuid.NewString(),
			OrderItemID: uuid.NewString(),
			SellerID:    sellerID.String(),
			ActorID:     uuid.NewString(),
			Status:      "Accepted",
		})

		assert.NotNil(t, repo.created)
		assert.Equal(t, models.NotificationOrder, repo.created.Type)
		assert.Equal(t, sellerID, *repo.created.SellerID)
		assert.Contains(t, repo.created.Message, "Accepted")
	})

	t.Run("Return event is high priority", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		p := NewEventPublisher(nil, nil, "", repo, zap.NewNop())

		p.Publish(ctx, models.OrderEvent{
			EventType:    "return_requested",
			OrderID:      uuid.NewString(),
			OrderItemID:  uuid.NewString(),
			SellerID:     sellerID.String(),
			ActorID:      uuid.NewString(),
			ReturnStatus: "ReturnRequested",
		})

		assert.NotNil(t, repo.created)
		assert.Equal(t, models.NotificationReturn, repo.created.Type)
		assert.Equal(t, models.PriorityHigh, repo.created.Priority)
	})

	t.Run("Order-level event stores nothing", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		p := NewEventPublisher(nil, nil, "", repo, zap.NewNop())

		p.Publish(ctx, models.OrderEvent{
			EventType: "order_created",
			OrderID:   uuid.NewString(),
			ActorID:   uuid.NewString(),
		})

		assert.Nil(t, repo.created)
	})
}
