package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/services"
)

// AddressController manages the user's address book.
type AddressController struct {
	addressService services.AddressService
}

func NewAddressController(svc services.AddressService) *AddressController {
	return &AddressController{addressService: svc}
}

// ListAddresses handles GET /addresses
func (ac *AddressController) ListAddresses(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	addresses, svcErr := ac.addressService.List(ctx.Request.Context(), c.ID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// CreateAddress handles POST /addresses
func (ac *AddressController) CreateAddress(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req services.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	address, svcErr := ac.addressService.Create(ctx.Request.Context(), c.ID, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"address": address})
}

// UpdateAddress handles PUT /addresses/:id
func (ac *AddressController) UpdateAddress(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req services.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	address, svcErr := ac.addressService.Update(ctx.Request.Context(), c.ID, id, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"address": address})
}

// DeleteAddress handles DELETE /addresses/:id
func (ac *AddressController) DeleteAddress(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	if svcErr := ac.addressService.Delete(ctx.Request.Context(), c.ID, id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
