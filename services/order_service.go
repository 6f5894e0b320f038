package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// OrderService creates orders from the cart and serves order reads.
// Checkout runs in a single transaction: stock is decremented, snapshot
// items are written and the cart is cleared together or not at all.
type OrderService interface {
	Checkout(ctx context.Context, caller Caller, addressID uuid.UUID) (*models.Order, *ServiceError)
	GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, *ServiceError)
	GetOrderByID(ctx context.Context, caller Caller, orderID uuid.UUID) (*models.Order, *ServiceError)
	GetAllOrders(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError)
	GetSellerItems(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.OrderItem, int64, *ServiceError)
	ForceOrderStatus(ctx context.Context, caller Caller, orderID uuid.UUID, status string) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	db        *gorm.DB
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	cartCache *repository.CartCache
	events    *EventPublisher
	logger    *zap.Logger
}

func NewOrderService(db *gorm.DB, orders repository.OrderRepository, addresses repository.AddressRepository, cartCache *repository.CartCache, events *EventPublisher, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		db:        db,
		orders:    orders,
		addresses: addresses,
		cartCache: cartCache,
		events:    events,
		logger:    logger,
	}
}

func (s *orderServiceImpl) Checkout(ctx context.Context, caller Caller, addressID uuid.UUID) (*models.Order, *ServiceError) {
	address, err := s.addresses.FindByIDAndUserID(ctx, addressID, caller.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Address not found")
		}
		s.logger.Error("Failed to load address", zap.Error(err))
		return nil, internal("Failed to load address")
	}

	var order *models.Order

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := repository.NewGormCartRepository(tx)
		products := repository.NewGormProductRepository(tx)

		lines, err := carts.FindByUser(ctx, caller.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return badRequest("Cart is empty")
		}

		created := &models.Order{
			OrderNumber:    newOrderNumber(),
			UserID:         caller.ID,
			Status:         lifecycle.OrderActive,
			ShipName:       address.Name,
			ShipPhone:      address.Phone,
			ShipStreet:     address.Street,
			ShipCity:       address.City,
			ShipState:      address.State,
			ShipPostalCode: address.PostalCode,
			ShipCountry:    address.Country,
		}

		var total float64
		for _, line := range lines {
			product, err := products.FindByID(ctx, line.ProductID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return badRequest("A product in your cart is no longer available")
				}
				return err
			}
			if product.VerificationStatus != models.VerificationApproved || product.SellerID == nil {
				return badRequest(fmt.Sprintf("Product %q is not available", product.Name))
			}

			var variant *models.Variant
			if len(product.Variants) > 0 {
				if line.VariantID == nil {
					return badRequest(fmt.Sprintf("Product %q requires a variant selection", product.Name))
				}
				for i := range product.Variants {
					if product.Variants[i].ID == *line.VariantID {
						variant = &product.Variants[i]
						break
					}
				}
				if variant == nil {
					return badRequest(fmt.Sprintf("Selected variant of %q is no longer available", product.Name))
				}
			}

			if variant != nil {
				if variant.Stock < line.Quantity {
					return badRequest(fmt.Sprintf("Insufficient stock for %q", product.Name))
				}
				variant.Stock -= line.Quantity
				if err := products.UpdateVariant(ctx, variant); err != nil {
					return err
				}
			} else {
				if product.Stock < line.Quantity {
					return badRequest(fmt.Sprintf("Insufficient stock for %q", product.Name))
				}
				if err := tx.Model(&models.Product{}).
					Where("id = ?", product.ID).
					Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
					return err
				}
			}

			item := models.NewOrderItem(uuid.Nil, product, variant, *product.SellerID, line.Quantity)
			total += item.Price * float64(item.Quantity)
			created.OrderItems = append(created.OrderItems, item)
		}
		created.TotalPrice = total

		if err := repository.NewGormOrderRepository(tx).CreateOrder(ctx, created); err != nil {
			return err
		}
		if err := carts.ClearUser(ctx, caller.ID); err != nil {
			return err
		}

		order = created
		return nil
	})
	if txErr != nil {
		if se := asServiceError(txErr); se != nil {
			return nil, se
		}
		s.logger.Error("Checkout transaction failed", zap.Error(txErr))
		return nil, internal("Failed to create order")
	}

	if s.cartCache != nil {
		if err := s.cartCache.Invalidate(ctx, caller.ID.String()); err != nil {
			s.logger.Warn("Failed to invalidate cart cache", zap.Error(err))
		}
	}

	if s.events != nil {
		s.events.Publish(ctx, models.OrderEvent{
			EventType:   "order_created",
			OrderID:     order.ID.String(),
			ActorID:     caller.ID.String(),
			OrderStatus: order.Status,
		})
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(order.OrderItems)),
	)
	return order, nil
}

func (s *orderServiceImpl) GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orders.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, internal("Failed to list orders")
	}
	return orders, total, nil
}

func (s *orderServiceImpl) GetOrderByID(ctx context.Context, caller Caller, orderID uuid.UUID) (*models.Order, *ServiceError) {
	var order *models.Order
	var err error
	if caller.Role == models.RoleAdmin {
		order, err = s.orders.FindByID(ctx, orderID)
	} else {
		// Scoped by user so someone else's order reads as not-found.
		order, err = s.orders.FindByIDAndUserID(ctx, orderID, caller.ID)
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to load order", zap.Error(err))
		return nil, internal("Failed to load order")
	}
	return order, nil
}

func (s *orderServiceImpl) GetAllOrders(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orders.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, internal("Failed to list orders")
	}
	return orders, total, nil
}

func (s *orderServiceImpl) GetSellerItems(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.OrderItem, int64, *ServiceError) {
	items, total, err := s.orders.FindItemsBySeller(ctx, sellerID, page, limit)
	if err != nil {
		s.logger.Error("Failed to list seller items", zap.Error(err))
		return nil, 0, internal("Failed to list order items")
	}
	return items, total, nil
}

// ForceOrderStatus sets the aggregate status directly. The item statuses
// are left as they are, so the next item transition refolds over them.
func (s *orderServiceImpl) ForceOrderStatus(ctx context.Context, caller Caller, orderID uuid.UUID, status string) (*models.Order, *ServiceError) {
	if caller.Role != models.RoleAdmin {
		return nil, forbidden("Admin access required")
	}
	if !lifecycle.ValidOrderStatus(status) {
		return nil, badRequest("Invalid order status: " + status)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to load order", zap.Error(err))
		return nil, internal("Failed to load order")
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.logger.Error("Failed to update order status", zap.Error(err))
		return nil, internal("Failed to update order status")
	}
	order.Status = status

	s.logger.Warn("Admin order status override",
		zap.String("order_id", orderID.String()),
		zap.String("admin_id", caller.ID.String()),
		zap.String("status", status),
	)
	if s.events != nil {
		s.events.Publish(ctx, models.OrderEvent{
			EventType:   "order_status_overridden",
			OrderID:     orderID.String(),
			ActorID:     caller.ID.String(),
			OrderStatus: status,
		})
	}
	return order, nil
}

// newOrderNumber builds a human-readable unique order reference.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
