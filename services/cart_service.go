package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// CartService manages the cart rows in Postgres and keeps the assembled
// cart view cached in Redis. Every mutation invalidates the cache; GetCart
// rebuilds it on a miss.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, *ServiceError)
	AddItem(ctx context.Context, userID uuid.UUID, req models.AddCartItemRequest) *ServiceError
	SetQuantity(ctx context.Context, userID uuid.UUID, req models.CartQuantityRequest) *ServiceError
	IncrementLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError
	DecrementLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError
	RemoveLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError
	Clear(ctx context.Context, userID uuid.UUID) *ServiceError
}

type cartServiceImpl struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	cache    *repository.CartCache
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, cache *repository.CartCache, logger *zap.Logger) CartService {
	return &cartServiceImpl{carts: carts, products: products, cache: cache, logger: logger}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, *ServiceError) {
	if s.cache != nil {
		view, err := s.cache.Get(ctx, userID.String())
		if err != nil {
			s.logger.Warn("Cart cache read failed", zap.Error(err))
		} else if view != nil {
			return view, nil
		}
	}

	items, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}

	view := &models.CartView{Items: []models.CartLine{}, UpdatedAt: time.Now()}
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				// Product disappeared since the line was added. Drop it.
				if err := s.carts.Delete(ctx, item.ID); err != nil {
					s.logger.Warn("Failed to drop stale cart line", zap.Error(err))
				}
				continue
			}
			s.logger.Error("Failed to load cart product", zap.Error(err))
			return nil, internal("Failed to load cart")
		}

		line := models.CartLine{
			CartItem:    item,
			ProductName: product.Name,
			ImageURL:    product.ImageURL,
			UnitPrice:   product.Price,
		}
		if product.DiscountedPrice != nil {
			line.UnitPrice = *product.DiscountedPrice
		}
		if item.VariantID != nil {
			for i := range product.Variants {
				if product.Variants[i].ID == *item.VariantID {
					v := &product.Variants[i]
					line.UnitPrice = v.Price
					line.VariantSize = v.Size
					line.VariantColor = v.Color
					if v.ImageURL != "" {
						line.ImageURL = v.ImageURL
					}
					break
				}
			}
		}
		line.LineTotal = line.UnitPrice * float64(item.Quantity)
		view.Total += line.LineTotal
		view.Items = append(view.Items, line)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID.String(), view); err != nil {
			s.logger.Warn("Cart cache write failed", zap.Error(err))
		}
	}
	return view, nil
}

// AddItem merges into an existing line for the same product/variant pair
// instead of creating a duplicate.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID uuid.UUID, req models.AddCartItemRequest) *ServiceError {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Product not found")
		}
		s.logger.Error("Failed to load product", zap.Error(err))
		return internal("Failed to add to cart")
	}
	if product.VerificationStatus != models.VerificationApproved {
		return notFound("Product not found")
	}
	if len(product.Variants) > 0 && req.VariantID == nil {
		return badRequest("This product requires a variant selection")
	}
	if req.VariantID != nil {
		found := false
		for i := range product.Variants {
			if product.Variants[i].ID == *req.VariantID {
				found = true
				break
			}
		}
		if !found {
			return notFound("Variant not found")
		}
	}

	existing, err := s.carts.FindLine(ctx, userID, req.ProductID, req.VariantID)
	if err != nil && err != gorm.ErrRecordNotFound {
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return internal("Failed to add to cart")
	}

	if existing != nil {
		existing.Quantity += req.Quantity
		if err := s.carts.Update(ctx, existing); err != nil {
			s.logger.Error("Failed to update cart line", zap.Error(err))
			return internal("Failed to add to cart")
		}
	} else {
		line := &models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			VariantID: req.VariantID,
			Quantity:  req.Quantity,
		}
		if err := s.carts.Create(ctx, line); err != nil {
			s.logger.Error("Failed to create cart line", zap.Error(err))
			return internal("Failed to add to cart")
		}
	}

	s.invalidate(ctx, userID)
	return nil
}

// SetQuantity sets an exact quantity. Zero or less removes the line.
func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID uuid.UUID, req models.CartQuantityRequest) *ServiceError {
	line, err := s.carts.FindLine(ctx, userID, req.ProductID, req.VariantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Cart line not found")
		}
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return internal("Failed to update cart")
	}

	if req.Quantity <= 0 {
		if err := s.carts.Delete(ctx, line.ID); err != nil {
			s.logger.Error("Failed to remove cart line", zap.Error(err))
			return internal("Failed to update cart")
		}
	} else {
		line.Quantity = req.Quantity
		if err := s.carts.Update(ctx, line); err != nil {
			s.logger.Error("Failed to update cart line", zap.Error(err))
			return internal("Failed to update cart")
		}
	}

	s.invalidate(ctx, userID)
	return nil
}

// IncrementLine bumps the quantity by one. A product not in the cart yet
// is added with quantity one, going through the AddItem validations.
func (s *cartServiceImpl) IncrementLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError {
	line, err := s.carts.FindLine(ctx, userID, productID, variantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.AddItem(ctx, userID, models.AddCartItemRequest{
				ProductID: productID,
				VariantID: variantID,
				Quantity:  1,
			})
		}
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return internal("Failed to update cart")
	}

	line.Quantity++
	if err := s.carts.Update(ctx, line); err != nil {
		s.logger.Error("Failed to update cart line", zap.Error(err))
		return internal("Failed to update cart")
	}

	s.invalidate(ctx, userID)
	return nil
}

// DecrementLine drops the quantity by one, removing the line at one.
func (s *cartServiceImpl) DecrementLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError {
	line, err := s.carts.FindLine(ctx, userID, productID, variantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Cart line not found")
		}
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return internal("Failed to update cart")
	}

	if line.Quantity <= 1 {
		if err := s.carts.Delete(ctx, line.ID); err != nil {
			s.logger.Error("Failed to remove cart line", zap.Error(err))
			return internal("Failed to update cart")
		}
	} else {
		line.Quantity--
		if err := s.carts.Update(ctx, line); err != nil {
			s.logger.Error("Failed to update cart line", zap.Error(err))
			return internal("Failed to update cart")
		}
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *cartServiceImpl) RemoveLine(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) *ServiceError {
	line, err := s.carts.FindLine(ctx, userID, productID, variantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Cart line not found")
		}
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return internal("Failed to update cart")
	}
	if err := s.carts.Delete(ctx, line.ID); err != nil {
		s.logger.Error("Failed to remove cart line", zap.Error(err))
		return internal("Failed to update cart")
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID uuid.UUID) *ServiceError {
	if err := s.carts.ClearUser(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return internal("Failed to clear cart")
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *cartServiceImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID.String()); err != nil {
		s.logger.Warn("Cart cache invalidation failed", zap.Error(err))
	}
}
