package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// CartController handles the authenticated user's cart.
type CartController struct {
	cartService services.CartService
}

func NewCartController(svc services.CartService) *CartController {
	return &CartController{cartService: svc}
}

// GetCart handles GET /cart
func (cc *CartController) GetCart(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	view, svcErr := cc.cartService.GetCart(ctx.Request.Context(), c.ID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// AddItem handles POST /cart/items
func (cc *CartController) AddItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := cc.cartService.AddItem(ctx.Request.Context(), c.ID, req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Added to cart"})
}

// SetQuantity handles PUT /cart/items
func (cc *CartController) SetQuantity(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.CartQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := cc.cartService.SetQuantity(ctx.Request.Context(), c.ID, req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// queryVariantID parses the optional variant_id query param.
func queryVariantID(ctx *gin.Context) (*uuid.UUID, bool) {
	v := ctx.Query("variant_id")
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant_id"})
		return nil, false
	}
	return &id, true
}

// IncreaseItem handles POST /cart/items/:product_id/increase
func (cc *CartController) IncreaseItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "product_id")
	if !ok {
		return
	}
	variantID, ok := queryVariantID(ctx)
	if !ok {
		return
	}

	if svcErr := cc.cartService.IncrementLine(ctx.Request.Context(), c.ID, productID, variantID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// DecreaseItem handles POST /cart/items/:product_id/decrease
func (cc *CartController) DecreaseItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "product_id")
	if !ok {
		return
	}
	variantID, ok := queryVariantID(ctx)
	if !ok {
		return
	}

	if svcErr := cc.cartService.DecrementLine(ctx.Request.Context(), c.ID, productID, variantID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveItem handles DELETE /cart/items/:product_id
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "product_id")
	if !ok {
		return
	}
	variantID, ok := queryVariantID(ctx)
	if !ok {
		return
	}

	if svcErr := cc.cartService.RemoveLine(ctx.Request.Context(), c.ID, productID, variantID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

// ClearCart handles DELETE /cart
func (cc *CartController) ClearCart(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	if svcErr := cc.cartService.Clear(ctx.Request.Context(), c.ID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
