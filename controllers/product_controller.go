package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// ProductController serves the public catalog.
type ProductController struct {
	productService services.ProductService
}

func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{productService: svc}
}

// ListProducts handles GET /products
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	filter := models.ProductFilter{
		Gender:   ctx.Query("gender"),
		Category: ctx.Query("category"),
		Name:     ctx.Query("q"),
	}
	if v := ctx.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := ctx.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}

	products, total, svcErr := pc.productService.ListPublic(ctx.Request.Context(), filter, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products, "meta": paginationMeta(page, limit, total)})
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	product, svcErr := pc.productService.GetPublic(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, product)
}
