package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// AdminController covers seller management, the verification queue,
// manual lifecycle overrides and reporting.
type AdminController struct {
	adminService       services.AdminService
	productService     services.ProductService
	orderService       services.OrderService
	fulfillmentService services.FulfillmentService
	returnService      services.ReturnService
}

func NewAdminController(adminSvc services.AdminService, productSvc services.ProductService, orderSvc services.OrderService, fulfillmentSvc services.FulfillmentService, returnSvc services.ReturnService) *AdminController {
	return &AdminController{
		adminService:       adminSvc,
		productService:     productSvc,
		orderService:       orderSvc,
		fulfillmentService: fulfillmentSvc,
		returnService:      returnSvc,
	}
}

// ListSellers handles GET /admin/sellers
func (ac *AdminController) ListSellers(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	sellers, total, svcErr := ac.adminService.ListSellers(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"sellers": sellers, "meta": paginationMeta(page, limit, total)})
}

// ApproveSeller handles POST /admin/sellers/:id/approve
func (ac *AdminController) ApproveSeller(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	seller, svcErr := ac.adminService.ApproveSeller(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"seller": seller})
}

// RevokeSeller handles POST /admin/sellers/:id/revoke
func (ac *AdminController) RevokeSeller(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	seller, svcErr := ac.adminService.RevokeSeller(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"seller": seller})
}

// BlockUser handles POST /admin/users/:id/block
func (ac *AdminController) BlockUser(ctx *gin.Context) {
	ac.setBlocked(ctx, true)
}

// UnblockUser handles POST /admin/users/:id/unblock
func (ac *AdminController) UnblockUser(ctx *gin.Context) {
	ac.setBlocked(ctx, false)
}

func (ac *AdminController) setBlocked(ctx *gin.Context, blocked bool) {
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	user, svcErr := ac.adminService.BlockUser(ctx.Request.Context(), id, blocked)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser handles DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	if svcErr := ac.adminService.DeleteUser(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ListPendingProducts handles GET /admin/products/pending
func (ac *AdminController) ListPendingProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	products, total, svcErr := ac.productService.ListPendingVerification(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products, "meta": paginationMeta(page, limit, total)})
}

// ApproveProduct handles POST /admin/products/:id/approve
func (ac *AdminController) ApproveProduct(ctx *gin.Context) {
	ac.setVerification(ctx, models.VerificationApproved)
}

// RejectProduct handles POST /admin/products/:id/reject
func (ac *AdminController) RejectProduct(ctx *gin.Context) {
	ac.setVerification(ctx, models.VerificationRejected)
}

func (ac *AdminController) setVerification(ctx *gin.Context, status string) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	product, svcErr := ac.productService.SetVerification(ctx.Request.Context(), c, id, status)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// BulkUpdateProducts handles POST /admin/products/bulk
func (ac *AdminController) BulkUpdateProducts(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.BulkUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	affected, svcErr := ac.productService.BulkUpdate(ctx.Request.Context(), c, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updated": affected})
}

// ListAllOrders handles GET /admin/orders
func (ac *AdminController) ListAllOrders(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	orders, total, svcErr := ac.orderService.GetAllOrders(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": orders, "meta": paginationMeta(page, limit, total)})
}

// OverrideItemStatus handles PUT /admin/items/:item_id/status
func (ac *AdminController) OverrideItemStatus(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	var req models.OverrideStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ac.fulfillmentService.OverrideStatus(ctx.Request.Context(), c, itemID, req.Status, req.Reason)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// OverrideReturnStatus handles PUT /admin/items/:item_id/return-status
func (ac *AdminController) OverrideReturnStatus(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	var req models.OverrideReturnStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ac.returnService.OverrideReturnStatus(ctx.Request.Context(), c, itemID, req.ReturnStatus, req.Notes)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// ForceOrderStatus handles PUT /admin/orders/:id/status
func (ac *AdminController) ForceOrderStatus(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := ac.orderService.ForceOrderStatus(ctx.Request.Context(), c, orderID, req.Status)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// Analytics handles GET /admin/analytics
func (ac *AdminController) Analytics(ctx *gin.Context) {
	summary, svcErr := ac.adminService.Analytics(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
