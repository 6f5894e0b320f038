package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// SellerController is the seller workspace: fulfillment transitions on
// their order items, return decisions and catalog management.
type SellerController struct {
	fulfillmentService services.FulfillmentService
	returnService      services.ReturnService
	orderService       services.OrderService
	productService     services.ProductService
}

func NewSellerController(fulfillmentSvc services.FulfillmentService, returnSvc services.ReturnService, orderSvc services.OrderService, productSvc services.ProductService) *SellerController {
	return &SellerController{
		fulfillmentService: fulfillmentSvc,
		returnService:      returnSvc,
		orderService:       orderSvc,
		productService:     productSvc,
	}
}

// ListItems handles GET /seller/items
func (sc *SellerController) ListItems(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	items, total, svcErr := sc.orderService.GetSellerItems(ctx.Request.Context(), c.ID, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items, "meta": paginationMeta(page, limit, total)})
}

// AcceptItem handles POST /seller/items/:item_id/accept
func (sc *SellerController) AcceptItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	item, svcErr := sc.fulfillmentService.AcceptItem(ctx.Request.Context(), c, itemID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// RejectItem handles POST /seller/items/:item_id/reject
func (sc *SellerController) RejectItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	var req models.RejectItemRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	item, svcErr := sc.fulfillmentService.RejectItem(ctx.Request.Context(), c, itemID, req.Reason)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// AcceptReturn handles POST /seller/items/:item_id/return/accept
func (sc *SellerController) AcceptReturn(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	item, svcErr := sc.returnService.AcceptReturn(ctx.Request.Context(), c, itemID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// RejectReturn handles POST /seller/items/:item_id/return/reject
func (sc *SellerController) RejectReturn(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	var req models.ReturnDecisionRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	item, svcErr := sc.returnService.RejectReturn(ctx.Request.Context(), c, itemID, req.Notes)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// MarkReturnReceived handles POST /seller/items/:item_id/return/received
func (sc *SellerController) MarkReturnReceived(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	itemID, ok := pathUUID(ctx, "item_id")
	if !ok {
		return
	}

	item, svcErr := sc.returnService.MarkReturnReceived(ctx.Request.Context(), c, itemID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// ListProducts handles GET /seller/products
func (sc *SellerController) ListProducts(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	products, total, svcErr := sc.productService.ListSellerProducts(ctx.Request.Context(), c, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products, "meta": paginationMeta(page, limit, total)})
}

// CreateProduct handles POST /seller/products
func (sc *SellerController) CreateProduct(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := sc.productService.CreateProduct(ctx.Request.Context(), c, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PUT /seller/products/:id
func (sc *SellerController) UpdateProduct(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := sc.productService.UpdateProduct(ctx.Request.Context(), c, id, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles DELETE /seller/products/:id
func (sc *SellerController) DeleteProduct(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	if svcErr := sc.productService.DeleteProduct(ctx.Request.Context(), c, id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// AddVariant handles POST /seller/products/:id/variants
func (sc *SellerController) AddVariant(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req models.VariantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	variant, svcErr := sc.productService.AddVariant(ctx.Request.Context(), c, productID, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"variant": variant})
}

// UpdateVariant handles PUT /seller/variants/:variant_id
func (sc *SellerController) UpdateVariant(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	variantID, ok := pathUUID(ctx, "variant_id")
	if !ok {
		return
	}

	var req models.VariantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	variant, svcErr := sc.productService.UpdateVariant(ctx.Request.Context(), c, variantID, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"variant": variant})
}

// DeleteVariant handles DELETE /seller/variants/:variant_id
func (sc *SellerController) DeleteVariant(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	variantID, ok := pathUUID(ctx, "variant_id")
	if !ok {
		return
	}

	if svcErr := sc.productService.DeleteVariant(ctx.Request.Context(), c, variantID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
}

// PresignUpload handles POST /seller/uploads/presign
func (sc *SellerController) PresignUpload(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.PresignUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	upload, svcErr := sc.productService.PresignImageUpload(ctx.Request.Context(), c, req.FileName)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, upload)
}
