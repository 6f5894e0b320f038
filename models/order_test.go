package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
)

func TestNewOrderItem(t *testing.T) {
	sellerID := uuid.New()
	orderID := uuid.New()

	t.Run("Snapshot from product without variants", func(t *testing.T) {
		product := &Product{ID: uuid.New(), Name: "Linen Shirt", Price: 49.90, ImageURL: "shirt.jpg"}

		item := NewOrderItem(orderID, product, nil, sellerID, 2)
		assert.Equal(t, product.ID, item.ProductID)
		assert.Equal(t, sellerID, item.SellerID)
		assert.Equal(t, 49.90, item.Price)
		assert.Equal(t, "shirt.jpg", item.VariantImageURL)
		assert.Equal(t, lifecycle.StatusPending, item.Status)
		assert.Equal(t, lifecycle.ReturnNone, item.ReturnStatus)
		assert.True(t, item.IsReturnEligible)
		assert.Nil(t, item.VariantID)
	})

	t.Run("Discounted price wins", func(t *testing.T) {
		discounted := 39.90
		product := &Product{ID: uuid.New(), Price: 49.90, DiscountedPrice: &discounted}

		item := NewOrderItem(orderID, product, nil, sellerID, 1)
		assert.Equal(t, discounted, item.Price)
	})

	t.Run("Variant overrides price and attributes", func(t *testing.T) {
		product := &Product{ID: uuid.New(), Price: 49.90, ImageURL: "base.jpg"}
		variant := &Variant{ID: uuid.New(), Price: 54.90, Size: "L", Color: "Navy", ImageURL: "navy.jpg"}

		item := NewOrderItem(orderID, product, variant, sellerID, 1)
		assert.Equal(t, 54.90, item.Price)
		assert.Equal(t, "L", item.VariantSize)
		assert.Equal(t, "Navy", item.VariantColor)
		assert.Equal(t, "navy.jpg", item.VariantImageURL)
		assert.Equal(t, &variant.ID, item.VariantID)
	})

	t.Run("Variant without its own image keeps the product image", func(t *testing.T) {
		product := &Product{ID: uuid.New(), Price: 49.90, ImageURL: "base.jpg"}
		variant := &Variant{ID: uuid.New(), Price: 54.90, Size: "M"}

		item := NewOrderItem(orderID, product, variant, sellerID, 1)
		assert.Equal(t, "base.jpg", item.VariantImageURL)
	})

	t.Run("Snapshot survives later product edits", func(t *testing.T) {
		product := &Product{ID: uuid.New(), Name: "Kurta", Price: 20.00}
		item := NewOrderItem(orderID, product, nil, sellerID, 1)

		product.Price = 99.99
		product.Name = "Renamed"
		assert.Equal(t, 20.00, item.Price)
	})
}
