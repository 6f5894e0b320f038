package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/revanth-raj24/AlmirahShop/controllers"
	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// ---- concrete mocks ----

type mockFulfillmentSvc struct {
	item   *models.OrderItem
	svcErr *services.ServiceError
}

func (m *mockFulfillmentSvc) AcceptItem(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockFulfillmentSvc) RejectItem(_ context.Context, _ services.Caller, _ uuid.UUID, _ *string) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockFulfillmentSvc) OverrideStatus(_ context.Context, _ services.Caller, _ uuid.UUID, _ string, _ *string) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}

type mockReturnSvc struct {
	item   *models.OrderItem
	svcErr *services.ServiceError
}

func (m *mockReturnSvc) RequestReturn(_ context.Context, _ services.Caller, _ uuid.UUID, _ string, _ *string) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockReturnSvc) CancelReturn(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockReturnSvc) AcceptReturn(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockReturnSvc) RejectReturn(_ context.Context, _ services.Caller, _ uuid.UUID, _ *string) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockReturnSvc) MarkReturnReceived(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}
func (m *mockReturnSvc) OverrideReturnStatus(_ context.Context, _ services.Caller, _ uuid.UUID, _ string, _ *string) (*models.OrderItem, *services.ServiceError) {
	return m.item, m.svcErr
}

type mockOrderSvc struct {
	items []models.OrderItem
	total int64
}

func (m *mockOrderSvc) Checkout(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.Order, *services.ServiceError) {
	return nil, nil
}
func (m *mockOrderSvc) GetUserOrders(_ context.Context, _ uuid.UUID, _, _ int) ([]models.Order, int64, *services.ServiceError) {
	return nil, 0, nil
}
func (m *mockOrderSvc) GetOrderByID(_ context.Context, _ services.Caller, _ uuid.UUID) (*models.Order, *services.ServiceError) {
	return nil, nil
}
func (m *mockOrderSvc) GetAllOrders(_ context.Context, _, _ int) ([]models.Order, int64, *services.ServiceError) {
	return nil, 0, nil
}
func (m *mockOrderSvc) GetSellerItems(_ context.Context, _ uuid.UUID, _, _ int) ([]models.OrderItem, int64, *services.ServiceError) {
	return m.items, m.total, nil
}
func (m *mockOrderSvc) ForceOrderStatus(_ context.Context, _ services.Caller, _ uuid.UUID, _ string) (*models.Order, *services.ServiceError) {
	return nil, nil
}

// ---- helpers ----

func setupSellerRouter(fSvc services.FulfillmentService, rSvc services.ReturnService, oSvc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	sellerID := uuid.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", sellerID.String())
		c.Set("role", models.RoleSeller)
		c.Next()
	})

	sc := controllers.NewSellerController(fSvc, rSvc, oSvc, nil)
	r.GET("/seller/items", sc.ListItems)
	r.POST("/seller/items/:item_id/accept", sc.AcceptItem)
	r.POST("/seller/items/:item_id/reject", sc.RejectItem)
	r.POST("/seller/items/:item_id/return/accept", sc.AcceptReturn)
	r.POST("/seller/items/:item_id/return/reject", sc.RejectReturn)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestAcceptItem_Success(t *testing.T) {
	item := &models.OrderItem{ID: uuid.New(), Status: lifecycle.StatusAccepted}
	r := setupSellerRouter(&mockFulfillmentSvc{item: item}, &mockReturnSvc{}, &mockOrderSvc{})

	w := postJSON(r, "/seller/items/"+item.ID.String()+"/accept", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Item models.OrderItem `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, lifecycle.StatusAccepted, resp.Item.Status)
}

func TestAcceptItem_InvalidID(t *testing.T) {
	r := setupSellerRouter(&mockFulfillmentSvc{}, &mockReturnSvc{}, &mockOrderSvc{})

	w := postJSON(r, "/seller/items/not-a-uuid/accept", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcceptItem_ServiceErrorMapped(t *testing.T) {
	svcErr := &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Order item not found"}
	r := setupSellerRouter(&mockFulfillmentSvc{svcErr: svcErr}, &mockReturnSvc{}, &mockOrderSvc{})

	w := postJSON(r, "/seller/items/"+uuid.NewString()+"/accept", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order item not found")
}

func TestRejectItem_NoBody(t *testing.T) {
	item := &models.OrderItem{ID: uuid.New(), Status: lifecycle.StatusRejected}
	r := setupSellerRouter(&mockFulfillmentSvc{item: item}, &mockReturnSvc{}, &mockOrderSvc{})

	// The reason is optional, so a bare POST without a body must work.
	req := httptest.NewRequest(http.MethodPost, "/seller/items/"+item.ID.String()+"/reject", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRejectReturn_NoBody(t *testing.T) {
	item := &models.OrderItem{ID: uuid.New(), ReturnStatus: lifecycle.ReturnRejected}
	r := setupSellerRouter(&mockFulfillmentSvc{}, &mockReturnSvc{item: item}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/seller/items/"+item.ID.String()+"/return/reject", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRejectItem_MalformedBodyStillRejected(t *testing.T) {
	item := &models.OrderItem{ID: uuid.New(), Status: lifecycle.StatusRejected}
	r := setupSellerRouter(&mockFulfillmentSvc{item: item}, &mockReturnSvc{}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/seller/items/"+item.ID.String()+"/reject", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectItem_PassesReason(t *testing.T) {
	item := &models.OrderItem{ID: uuid.New(), Status: lifecycle.StatusRejected}
	r := setupSellerRouter(&mockFulfillmentSvc{item: item}, &mockReturnSvc{}, &mockOrderSvc{})

	w := postJSON(r, "/seller/items/"+item.ID.String()+"/reject", models.RejectItemRequest{})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptReturn_PreconditionError(t *testing.T) {
	svcErr := &services.ServiceError{StatusCode: http.StatusBadRequest, Message: `cannot accept a return for an item in return status "None"`}
	r := setupSellerRouter(&mockFulfillmentSvc{}, &mockReturnSvc{svcErr: svcErr}, &mockOrderSvc{})

	w := postJSON(r, "/seller/items/"+uuid.NewString()+"/return/accept", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "return status")
}

func TestListItems(t *testing.T) {
	items := []models.OrderItem{{ID: uuid.New(), Status: lifecycle.StatusPending}}
	r := setupSellerRouter(&mockFulfillmentSvc{}, &mockReturnSvc{}, &mockOrderSvc{items: items, total: 1})

	req := httptest.NewRequest(http.MethodGet, "/seller/items?page=1&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
