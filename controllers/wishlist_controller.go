package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/services"
)

// WishlistController manages saved products.
type WishlistController struct {
	wishlistService services.WishlistService
}

func NewWishlistController(svc services.WishlistService) *WishlistController {
	return &WishlistController{wishlistService: svc}
}

// ListWishlist handles GET /wishlist
func (wc *WishlistController) ListWishlist(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	items, svcErr := wc.wishlistService.List(ctx.Request.Context(), c.ID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// AddToWishlist handles POST /wishlist/:product_id
func (wc *WishlistController) AddToWishlist(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "product_id")
	if !ok {
		return
	}

	if svcErr := wc.wishlistService.Add(ctx.Request.Context(), c.ID, productID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Added to wishlist"})
}

// RemoveFromWishlist handles DELETE /wishlist/:product_id
func (wc *WishlistController) RemoveFromWishlist(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	productID, ok := pathUUID(ctx, "product_id")
	if !ok {
		return
	}

	if svcErr := wc.wishlistService.Remove(ctx.Request.Context(), c.ID, productID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
