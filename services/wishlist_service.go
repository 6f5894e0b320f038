package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// WishlistService saves products for later. Adding twice is a no-op.
type WishlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, *ServiceError)
	Add(ctx context.Context, userID, productID uuid.UUID) *ServiceError
	Remove(ctx context.Context, userID, productID uuid.UUID) *ServiceError
}

type wishlistServiceImpl struct {
	wishlist repository.WishlistRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewWishlistService(wishlist repository.WishlistRepository, products repository.ProductRepository, logger *zap.Logger) WishlistService {
	return &wishlistServiceImpl{wishlist: wishlist, products: products, logger: logger}
}

func (s *wishlistServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, *ServiceError) {
	items, err := s.wishlist.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list wishlist", zap.Error(err))
		return nil, internal("Failed to list wishlist")
	}
	return items, nil
}

func (s *wishlistServiceImpl) Add(ctx context.Context, userID, productID uuid.UUID) *ServiceError {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Product not found")
		}
		s.logger.Error("Failed to load product", zap.Error(err))
		return internal("Failed to update wishlist")
	}
	if product.VerificationStatus != models.VerificationApproved {
		return notFound("Product not found")
	}

	exists, err := s.wishlist.Exists(ctx, userID, productID)
	if err != nil {
		s.logger.Error("Failed to check wishlist", zap.Error(err))
		return internal("Failed to update wishlist")
	}
	if exists {
		return nil
	}

	if err := s.wishlist.Add(ctx, &models.WishlistItem{UserID: userID, ProductID: productID}); err != nil {
		s.logger.Error("Failed to add wishlist item", zap.Error(err))
		return internal("Failed to update wishlist")
	}
	return nil
}

func (s *wishlistServiceImpl) Remove(ctx context.Context, userID, productID uuid.UUID) *ServiceError {
	if err := s.wishlist.Remove(ctx, userID, productID); err != nil {
		s.logger.Error("Failed to remove wishlist item", zap.Error(err))
		return internal("Failed to update wishlist")
	}
	return nil
}
