package services

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
)

func TestGetOrderByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	order := &models.Order{ID: uuid.New(), UserID: userID, Status: lifecycle.OrderActive}

	t.Run("Owner can read their order", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		got, svcErr := svc.GetOrderByID(ctx, Caller{ID: userID, Role: models.RoleCustomer}, order.ID)
		assert.Nil(t, svcErr)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("Someone else's order reads as not found", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		_, svcErr := svc.GetOrderByID(ctx, Caller{ID: uuid.New(), Role: models.RoleCustomer}, order.ID)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	})

	t.Run("Admin can read any order", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		got, svcErr := svc.GetOrderByID(ctx, Caller{ID: uuid.New(), Role: models.RoleAdmin}, order.ID)
		assert.Nil(t, svcErr)
		assert.Equal(t, order.ID, got.ID)
	})
}

func TestForceOrderStatus(t *testing.T) {
	ctx := context.Background()
	order := &models.Order{ID: uuid.New(), UserID: uuid.New(), Status: lifecycle.OrderActive}
	admin := Caller{ID: uuid.New(), Role: models.RoleAdmin}

	t.Run("Admin forces a valid status", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		got, svcErr := svc.ForceOrderStatus(ctx, admin, order.ID, lifecycle.OrderCancelled)
		assert.Nil(t, svcErr)
		assert.Equal(t, lifecycle.OrderCancelled, got.Status)
		assert.Equal(t, lifecycle.OrderCancelled, repo.updatedOrderStatus)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		_, svcErr := svc.ForceOrderStatus(ctx, admin, order.ID, "Archived")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Non-admin is forbidden", func(t *testing.T) {
		repo := &mockOrderRepo{order: order}
		svc := NewOrderService(nil, repo, nil, nil, nil, zap.NewNop())

		_, svcErr := svc.ForceOrderStatus(ctx, Caller{ID: uuid.New(), Role: models.RoleSeller}, order.ID, lifecycle.OrderCancelled)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})
}

func TestNewOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := newOrderNumber()
		assert.Regexp(t, pattern, n)
		assert.False(t, seen[n], "order numbers must not repeat")
		seen[n] = true
	}
}
