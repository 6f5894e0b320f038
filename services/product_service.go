package services

import (
	"context"
	"fmt"
	"path"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	aws_pkg "github.com/revanth-raj24/AlmirahShop/pkg/aws"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// PresignedUpload is the response for a direct-to-S3 image upload.
type PresignedUpload struct {
	URL     string            `json:"url"`
	Key     string            `json:"key"`
	Headers map[string]string `json:"headers,omitempty"`
}

// ProductService covers the catalog: public browsing, seller CRUD and the
// admin verification queue. Sellers only ever see and touch their own
// products; someone else's product reads as not-found.
type ProductService interface {
	ListPublic(ctx context.Context, filter models.ProductFilter, page, limit int) ([]models.Product, int64, *ServiceError)
	GetPublic(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)

	CreateProduct(ctx context.Context, caller Caller, req models.CreateProductRequest) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, caller Caller, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, caller Caller, id uuid.UUID) *ServiceError
	ListSellerProducts(ctx context.Context, caller Caller, page, limit int) ([]models.Product, int64, *ServiceError)

	AddVariant(ctx context.Context, caller Caller, productID uuid.UUID, req models.VariantRequest) (*models.Variant, *ServiceError)
	UpdateVariant(ctx context.Context, caller Caller, variantID uuid.UUID, req models.VariantRequest) (*models.Variant, *ServiceError)
	DeleteVariant(ctx context.Context, caller Caller, variantID uuid.UUID) *ServiceError

	SetVerification(ctx context.Context, caller Caller, id uuid.UUID, status string) (*models.Product, *ServiceError)
	ListPendingVerification(ctx context.Context, page, limit int) ([]models.Product, int64, *ServiceError)
	BulkUpdate(ctx context.Context, caller Caller, req models.BulkUpdateRequest) (int64, *ServiceError)

	PresignImageUpload(ctx context.Context, caller Caller, fileName string) (*PresignedUpload, *ServiceError)
}

type productServiceImpl struct {
	products repository.ProductRepository
	awsCfg   *sdkaws.Config
	s3Bucket string
	logger   *zap.Logger
}

func NewProductService(products repository.ProductRepository, awsCfg *sdkaws.Config, s3Bucket string, logger *zap.Logger) ProductService {
	return &productServiceImpl{products: products, awsCfg: awsCfg, s3Bucket: s3Bucket, logger: logger}
}

// ListPublic pins the filter to Approved regardless of what was sent.
func (s *productServiceImpl) ListPublic(ctx context.Context, filter models.ProductFilter, page, limit int) ([]models.Product, int64, *ServiceError) {
	filter.VerificationStatus = models.VerificationApproved
	filter.SellerID = nil
	products, total, err := s.products.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, 0, internal("Failed to list products")
	}
	return products, total, nil
}

func (s *productServiceImpl) GetPublic(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, svcErr := s.load(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if product.VerificationStatus != models.VerificationApproved {
		return nil, notFound("Product not found")
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, caller Caller, req models.CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		SellerID:           &caller.ID,
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		Price:              req.Price,
		DiscountedPrice:    req.DiscountedPrice,
		Gender:             req.Gender,
		Category:           req.Category,
		Stock:              req.Stock,
		VerificationStatus: models.VerificationPending,
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, models.Variant{
			Size:     v.Size,
			Color:    v.Color,
			Price:    v.Price,
			Stock:    v.Stock,
			ImageURL: v.ImageURL,
		})
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, internal("Failed to create product")
	}
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, caller Caller, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, *ServiceError) {
	product, svcErr := s.loadOwned(ctx, caller, id)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.DiscountedPrice != nil {
		product.DiscountedPrice = req.DiscountedPrice
	}
	if req.Gender != nil {
		product.Gender = *req.Gender
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	// Edits go back through the verification queue.
	product.VerificationStatus = models.VerificationPending

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, internal("Failed to update product")
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, caller Caller, id uuid.UUID) *ServiceError {
	if _, svcErr := s.loadOwned(ctx, caller, id); svcErr != nil {
		return svcErr
	}
	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", zap.Error(err))
		return internal("Failed to delete product")
	}
	return nil
}

func (s *productServiceImpl) ListSellerProducts(ctx context.Context, caller Caller, page, limit int) ([]models.Product, int64, *ServiceError) {
	filter := models.ProductFilter{SellerID: &caller.ID}
	products, total, err := s.products.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list seller products", zap.Error(err))
		return nil, 0, internal("Failed to list products")
	}
	return products, total, nil
}

func (s *productServiceImpl) AddVariant(ctx context.Context, caller Caller, productID uuid.UUID, req models.VariantRequest) (*models.Variant, *ServiceError) {
	if _, svcErr := s.loadOwned(ctx, caller, productID); svcErr != nil {
		return nil, svcErr
	}

	variant := &models.Variant{
		ProductID: productID,
		Size:      req.Size,
		Color:     req.Color,
		Price:     req.Price,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
	}
	if err := s.products.CreateVariant(ctx, variant); err != nil {
		s.logger.Error("Failed to create variant", zap.Error(err))
		return nil, internal("Failed to create variant")
	}
	return variant, nil
}

func (s *productServiceImpl) UpdateVariant(ctx context.Context, caller Caller, variantID uuid.UUID, req models.VariantRequest) (*models.Variant, *ServiceError) {
	variant, svcErr := s.loadOwnedVariant(ctx, caller, variantID)
	if svcErr != nil {
		return nil, svcErr
	}

	variant.Size = req.Size
	variant.Color = req.Color
	variant.Price = req.Price
	variant.Stock = req.Stock
	variant.ImageURL = req.ImageURL

	if err := s.products.UpdateVariant(ctx, variant); err != nil {
		s.logger.Error("Failed to update variant", zap.Error(err))
		return nil, internal("Failed to update variant")
	}
	return variant, nil
}

func (s *productServiceImpl) DeleteVariant(ctx context.Context, caller Caller, variantID uuid.UUID) *ServiceError {
	if _, svcErr := s.loadOwnedVariant(ctx, caller, variantID); svcErr != nil {
		return svcErr
	}
	if err := s.products.DeleteVariant(ctx, variantID); err != nil {
		s.logger.Error("Failed to delete variant", zap.Error(err))
		return internal("Failed to delete variant")
	}
	return nil
}

func (s *productServiceImpl) SetVerification(ctx context.Context, caller Caller, id uuid.UUID, status string) (*models.Product, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, forbidden("Admin access required")
	}
	if status != models.VerificationApproved && status != models.VerificationRejected {
		return nil, badRequest("Invalid verification status: " + status)
	}

	product, svcErr := s.load(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.products.SetVerificationStatus(ctx, id, status); err != nil {
		s.logger.Error("Failed to set verification status", zap.Error(err))
		return nil, internal("Failed to update product")
	}
	product.VerificationStatus = status

	s.logger.Info("Product verification updated",
		zap.String("product_id", id.String()),
		zap.String("status", status),
		zap.String("admin_id", caller.ID.String()),
	)
	return product, nil
}

func (s *productServiceImpl) ListPendingVerification(ctx context.Context, page, limit int) ([]models.Product, int64, *ServiceError) {
	filter := models.ProductFilter{VerificationStatus: models.VerificationPending}
	products, total, err := s.products.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list pending products", zap.Error(err))
		return nil, 0, internal("Failed to list products")
	}
	return products, total, nil
}

func (s *productServiceImpl) BulkUpdate(ctx context.Context, caller Caller, req models.BulkUpdateRequest) (int64, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return 0, forbidden("Admin access required")
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Discount != nil {
		updates["discounted_price"] = *req.Discount
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if len(updates) == 0 {
		return 0, badRequest("No fields to update")
	}

	affected, err := s.products.BulkUpdate(ctx, req.ProductIDs, updates)
	if err != nil {
		s.logger.Error("Bulk update failed", zap.Error(err))
		return 0, internal("Failed to update products")
	}
	return affected, nil
}

func (s *productServiceImpl) PresignImageUpload(ctx context.Context, caller Caller, fileName string) (*PresignedUpload, *ServiceError) {
	if s.awsCfg == nil || s.s3Bucket == "" {
		return nil, &ServiceError{StatusCode: 503, Message: "Image uploads are not configured"}
	}

	key := fmt.Sprintf("products/%s/%s%s", caller.ID, uuid.NewString(), path.Ext(fileName))
	url, headers, err := aws_pkg.GeneratePresignedPutURL(ctx, *s.awsCfg, s.s3Bucket, key, 15*time.Minute)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.Error(err))
		return nil, internal("Failed to create upload URL")
	}
	return &PresignedUpload{URL: url, Key: key, Headers: headers}, nil
}

// load fetches by ID, mapping missing rows to not-found.
func (s *productServiceImpl) load(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to load product", zap.Error(err))
		return nil, internal("Failed to load product")
	}
	return product, nil
}

// loadOwned additionally checks seller ownership. Admins bypass the check.
// A mismatch reads as not-found so other sellers' catalogs are not
// enumerable.
func (s *productServiceImpl) loadOwned(ctx context.Context, caller Caller, id uuid.UUID) (*models.Product, *ServiceError) {
	product, svcErr := s.load(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if caller.Role == models.RoleAdmin {
		return product, nil
	}
	if product.SellerID == nil || *product.SellerID != caller.ID {
		return nil, notFound("Product not found")
	}
	return product, nil
}

func (s *productServiceImpl) loadOwnedVariant(ctx context.Context, caller Caller, variantID uuid.UUID) (*models.Variant, *ServiceError) {
	variant, err := s.products.FindVariantByID(ctx, variantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Variant not found")
		}
		s.logger.Error("Failed to load variant", zap.Error(err))
		return nil, internal("Failed to load variant")
	}
	if _, svcErr := s.loadOwned(ctx, caller, variant.ProductID); svcErr != nil {
		return nil, notFound("Variant not found")
	}
	return variant, nil
}
