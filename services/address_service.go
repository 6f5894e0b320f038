package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// AddressRequest creates or replaces an address-book entry.
type AddressRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required,len=2"`
	IsDefault  bool   `json:"is_default"`
}

// AddressService manages the per-user address book.
type AddressService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Address, *ServiceError)
	Create(ctx context.Context, userID uuid.UUID, req AddressRequest) (*models.Address, *ServiceError)
	Update(ctx context.Context, userID, addressID uuid.UUID, req AddressRequest) (*models.Address, *ServiceError)
	Delete(ctx context.Context, userID, addressID uuid.UUID) *ServiceError
}

type addressServiceImpl struct {
	addresses repository.AddressRepository
	logger    *zap.Logger
}

func NewAddressService(addresses repository.AddressRepository, logger *zap.Logger) AddressService {
	return &addressServiceImpl{addresses: addresses, logger: logger}
}

func (s *addressServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]models.Address, *ServiceError) {
	addresses, err := s.addresses.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list addresses", zap.Error(err))
		return nil, internal("Failed to list addresses")
	}
	return addresses, nil
}

func (s *addressServiceImpl) Create(ctx context.Context, userID uuid.UUID, req AddressRequest) (*models.Address, *ServiceError) {
	if req.IsDefault {
		if err := s.addresses.ClearDefault(ctx, userID); err != nil {
			s.logger.Error("Failed to clear default address", zap.Error(err))
			return nil, internal("Failed to save address")
		}
	}

	address := &models.Address{
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		s.logger.Error("Failed to create address", zap.Error(err))
		return nil, internal("Failed to save address")
	}
	return address, nil
}

func (s *addressServiceImpl) Update(ctx context.Context, userID, addressID uuid.UUID, req AddressRequest) (*models.Address, *ServiceError) {
	address, err := s.addresses.FindByIDAndUserID(ctx, addressID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Address not found")
		}
		s.logger.Error("Failed to load address", zap.Error(err))
		return nil, internal("Failed to save address")
	}

	if req.IsDefault && !address.IsDefault {
		if err := s.addresses.ClearDefault(ctx, userID); err != nil {
			s.logger.Error("Failed to clear default address", zap.Error(err))
			return nil, internal("Failed to save address")
		}
	}

	address.Name = req.Name
	address.Phone = req.Phone
	address.Street = req.Street
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.IsDefault = req.IsDefault

	if err := s.addresses.Update(ctx, address); err != nil {
		s.logger.Error("Failed to update address", zap.Error(err))
		return nil, internal("Failed to save address")
	}
	return address, nil
}

func (s *addressServiceImpl) Delete(ctx context.Context, userID, addressID uuid.UUID) *ServiceError {
	if _, err := s.addresses.FindByIDAndUserID(ctx, addressID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("Address not found")
		}
		s.logger.Error("Failed to load address", zap.Error(err))
		return internal("Failed to delete address")
	}
	if err := s.addresses.Delete(ctx, addressID, userID); err != nil {
		s.logger.Error("Failed to delete address", zap.Error(err))
		return internal("Failed to delete address")
	}
	return nil
}
