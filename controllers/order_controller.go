package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// OrderController handles the customer side of orders: checkout, history
// and return requests.
type OrderController struct {
	orderService  services.OrderService
	returnService services.ReturnService
}

func NewOrderController(orderSvc services.OrderService, returnSvc services.ReturnService) *OrderController {
	return &OrderController{orderService: orderSvc, returnService: returnSvc}
}

// Checkout handles POST /orders/checkout
func (oc *OrderController) Checkout(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.Checkout(ctx.Request.Context(), c, req.AddressID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListMyOrders handles GET /orders
func (oc *OrderController) ListMyOrders(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	orders, total, svcErr := oc.orderService.GetUserOrders(ctx.Request.Context(), c.ID, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": orders, "meta": paginationMeta(page, limit, total)})
}

// GetOrder handles GET /orders/:id
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	order, svcErr := oc.orderService.GetOrderByID(ctx.Request.Context(), c, orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// RequestReturn handles POST /orders/items/:item_id/return
func (oc *OrderController) RequestReturn(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	var req models.ReturnRequestPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := oc.returnService.RequestReturn(ctx.Request.Context(), c, itemID, req.Reason, req.Notes)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// CancelReturn handles DELETE /orders/items/:item_id/return
func (oc *OrderController) CancelReturn(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	item, svcErr := oc.returnService.CancelReturn(ctx.Request.Context(), c, itemID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}
