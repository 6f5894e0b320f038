package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// ReviewController handles product reviews.
type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(svc services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: svc}
}

// ListReviews handles GET /products/:id/reviews
func (rc *ReviewController) ListReviews(ctx *gin.Context) {
	productID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	reviews, total, svcErr := rc.reviewService.ListForProduct(ctx.Request.Context(), productID, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reviews": reviews, "meta": paginationMeta(page, limit, total)})
}

// CreateReview handles POST /reviews
func (rc *ReviewController) CreateReview(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, svcErr := rc.reviewService.Create(ctx.Request.Context(), c.ID, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"review": review})
}

// DeleteReview handles DELETE /reviews/:id
func (rc *ReviewController) DeleteReview(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	if svcErr := rc.reviewService.Delete(ctx.Request.Context(), c, id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
