package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// ReviewService handles product reviews. Customers can delete their own
// reviews; admins can delete any.
type ReviewService interface {
	ListForProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]models.Review, int64, *ServiceError)
	Create(ctx context.Context, userID uuid.UUID, req models.CreateReviewRequest) (*models.Review, *ServiceError)
	Delete(ctx context.Context, caller Caller, reviewID uuid.UUID) *ServiceError
}

type reviewServiceImpl struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{reviews: reviews, products: products, logger: logger}
}

func (s *reviewServiceImpl) ListForProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]models.Review, int64, *ServiceError) {
	reviews, total, err := s.reviews.FindByProduct(ctx, productID, page, limit)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, 0, internal("Failed to list reviews")
	}
	return reviews, total, nil
}

func (s *reviewServiceImpl) Create(ctx context.Context, userID uuid.UUID, req models.CreateReviewRequest) (*models.Review, *ServiceError) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to load product", zap.Error(err))
		return nil, internal("Failed to save review")
	}
	if product.VerificationStatus != models.VerificationApproved {
		return nil, notFound("Product not found")
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, internal("Failed to save review")
	}
	return review, nil
}

func (s *reviewServiceImpl) Delete(ctx context.Context, caller Caller, reviewID uuid.UUID) *ServiceError {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Review not found")
		}
		s.logger.Error("Failed to load review", zap.Error(err))
		return internal("Failed to delete review")
	}

	if caller.Role != models.RoleAdmin && review.UserID != caller.ID {
		return notFound("Review not found")
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		s.logger.Error("Failed to delete review", zap.Error(err))
		return internal("Failed to delete review")
	}
	return nil
}
