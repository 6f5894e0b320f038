package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// AnalyticsSummary is the admin dashboard aggregate.
type AnalyticsSummary struct {
	Revenue             float64                  `json:"revenue"`
	OrdersByStatus      []repository.StatusCount `json:"orders_by_status"`
	ItemsByStatus       []repository.StatusCount `json:"items_by_status"`
	ItemsByReturnStatus []repository.StatusCount `json:"items_by_return_status"`
	PendingSellers      int64                    `json:"pending_sellers"`
	GeneratedAt         time.Time                `json:"generated_at"`
}

// AdminService covers seller account management and reporting.
type AdminService interface {
	ListSellers(ctx context.Context, page, limit int) ([]models.User, int64, *ServiceError)
	ApproveSeller(ctx context.Context, sellerID uuid.UUID) (*models.User, *ServiceError)
	RevokeSeller(ctx context.Context, sellerID uuid.UUID) (*models.User, *ServiceError)
	BlockUser(ctx context.Context, userID uuid.UUID, blocked bool) (*models.User, *ServiceError)
	DeleteUser(ctx context.Context, userID uuid.UUID) *ServiceError
	Analytics(ctx context.Context) (*AnalyticsSummary, *ServiceError)
}

type adminServiceImpl struct {
	users     repository.UserRepository
	analytics repository.AnalyticsRepository
	logger    *zap.Logger
}

func NewAdminService(users repository.UserRepository, analytics repository.AnalyticsRepository, logger *zap.Logger) AdminService {
	return &adminServiceImpl{users: users, analytics: analytics, logger: logger}
}

func (s *adminServiceImpl) ListSellers(ctx context.Context, page, limit int) ([]models.User, int64, *ServiceError) {
	sellers, total, err := s.users.FindByRole(ctx, models.RoleSeller, page, limit)
	if err != nil {
		s.logger.Error("Failed to list sellers", zap.Error(err))
		return nil, 0, internal("Failed to list sellers")
	}
	return sellers, total, nil
}

func (s *adminServiceImpl) ApproveSeller(ctx context.Context, sellerID uuid.UUID) (*models.User, *ServiceError) {
	return s.setApproval(ctx, sellerID, true)
}

func (s *adminServiceImpl) RevokeSeller(ctx context.Context, sellerID uuid.UUID) (*models.User, *ServiceError) {
	return s.setApproval(ctx, sellerID, false)
}

func (s *adminServiceImpl) setApproval(ctx context.Context, sellerID uuid.UUID, approved bool) (*models.User, *ServiceError) {
	user, svcErr := s.loadUser(ctx, sellerID)
	if svcErr != nil {
		return nil, svcErr
	}
	if user.Role != models.RoleSeller {
		return nil, badRequest("User is not a seller")
	}

	user.IsApproved = approved
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update seller", zap.Error(err))
		return nil, internal("Failed to update seller")
	}

	s.logger.Info("Seller approval changed",
		zap.String("seller_id", sellerID.String()),
		zap.Bool("approved", approved),
	)
	return user, nil
}

func (s *adminServiceImpl) BlockUser(ctx context.Context, userID uuid.UUID, blocked bool) (*models.User, *ServiceError) {
	user, svcErr := s.loadUser(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	if user.Role == models.RoleAdmin {
		return nil, badRequest("Admin accounts cannot be blocked")
	}

	user.IsBlocked = blocked
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, internal("Failed to update user")
	}

	s.logger.Info("User block state changed",
		zap.String("user_id", userID.String()),
		zap.Bool("blocked", blocked),
	)
	return user, nil
}

// DeleteUser removes the account and its cart, wishlist and addresses.
// Orders survive with their seller and pricing snapshots intact.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) *ServiceError {
	user, svcErr := s.loadUser(ctx, userID)
	if svcErr != nil {
		return svcErr
	}
	if user.Role == models.RoleAdmin {
		return badRequest("Admin accounts cannot be deleted")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return internal("Failed to delete user")
	}

	s.logger.Warn("User deleted", zap.String("user_id", userID.String()))
	return nil
}

func (s *adminServiceImpl) Analytics(ctx context.Context) (*AnalyticsSummary, *ServiceError) {
	summary := &AnalyticsSummary{GeneratedAt: time.Now()}

	var err error
	if summary.Revenue, err = s.analytics.Revenue(ctx); err != nil {
		s.logger.Error("Failed to compute revenue", zap.Error(err))
		return nil, internal("Failed to build analytics")
	}
	if summary.OrdersByStatus, err = s.analytics.OrdersByStatus(ctx); err != nil {
		s.logger.Error("Failed to group orders", zap.Error(err))
		return nil, internal("Failed to build analytics")
	}
	if summary.ItemsByStatus, err = s.analytics.ItemsByStatus(ctx); err != nil {
		s.logger.Error("Failed to group items", zap.Error(err))
		return nil, internal("Failed to build analytics")
	}
	if summary.ItemsByReturnStatus, err = s.analytics.ItemsByReturnStatus(ctx); err != nil {
		s.logger.Error("Failed to group returns", zap.Error(err))
		return nil, internal("Failed to build analytics")
	}
	if summary.PendingSellers, err = s.analytics.PendingSellerCount(ctx); err != nil {
		s.logger.Error("Failed to count pending sellers", zap.Error(err))
		return nil, internal("Failed to build analytics")
	}

	return summary, nil
}

func (s *adminServiceImpl) loadUser(ctx context.Context, id uuid.UUID) (*models.User, *ServiceError) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFound("User not found")
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, internal("Failed to load user")
	}
	return user, nil
}

// BootstrapAdmin creates the first admin account from environment
// credentials when no admin exists yet. Subsequent starts are no-ops.
func BootstrapAdmin(ctx context.Context, users repository.UserRepository, email, password string, logger *zap.Logger) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:       "Administrator",
		Email:      email,
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		IsActive:   true,
		IsApproved: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin created", zap.String("email", email))
	return nil
}
