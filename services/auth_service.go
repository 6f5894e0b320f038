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

const otpTTL = 15 * time.Minute

// AuthService covers account creation, OTP activation and token issuance.
// Customers are approved automatically on verification; sellers stay
// unapproved until an admin approves them, though they can log in.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) *ServiceError
	VerifyOTP(ctx context.Context, email, code string) *ServiceError
	Login(ctx context.Context, email, password string) (*TokenPair, *models.User, *ServiceError)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *ServiceError)
}

type authServiceImpl struct {
	db     *gorm.DB
	users  repository.UserRepository
	tokens TokenService
	email  EmailSender
	logger *zap.Logger
}

func NewAuthService(db *gorm.DB, users repository.UserRepository, tokens TokenService, email EmailSender, logger *zap.Logger) AuthService {
	return &authServiceImpl{db: db, users: users, tokens: tokens, email: email, logger: logger}
}

func (s *authServiceImpl) Register(ctx context.Context, req models.RegisterRequest) *ServiceError {
	if req.Role == models.RoleSeller && req.StoreName == "" {
		return badRequest("Store name is required for seller accounts")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewGormUserRepository(tx)

		_, err := txRepo.FindByEmail(ctx, req.Email)
		if err == nil {
			return badRequest("Email already registered")
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		code := GenerateRandomCode(6)
		expiresAt := time.Now().Add(otpTTL)
		user := &models.User{
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			Password:         string(hashedPassword),
			Role:             req.Role,
			StoreName:        req.StoreName,
			IsActive:         false,
			IsApproved:       false,
			VerificationCode: code,
			CodeExpiresAt:    &expiresAt,
		}

		if err := txRepo.Create(ctx, user); err != nil {
			return err
		}

		if err := s.email.SendVerificationCode(user.Email, code); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if se := asServiceError(err); se != nil {
			return se
		}
		s.logger.Error("Registration failed", zap.Error(err))
		return internal("Failed to create account")
	}

	s.logger.Info("Account registered", zap.String("email", req.Email), zap.String("role", req.Role))
	return nil
}

func (s *authServiceImpl) VerifyOTP(ctx context.Context, email, code string) *ServiceError {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound("User not found")
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return internal("Failed to verify account")
	}

	if user.IsActive {
		return badRequest("Account already verified")
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return badRequest("Invalid verification code")
	}
	if user.CodeExpiresAt == nil || time.Now().After(*user.CodeExpiresAt) {
		return badRequest("Verification code has expired")
	}

	user.IsActive = true
	user.VerificationCode = ""
	user.CodeExpiresAt = nil
	// Sellers wait for admin approval; everyone else is approved on
	// verification.
	if user.Role != models.RoleSeller {
		user.IsApproved = true
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to activate user", zap.Error(err))
		return internal("Failed to verify account")
	}
	return nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
	}
	if user.IsBlocked {
		return nil, nil, forbidden("Account is blocked")
	}
	if !user.IsActive {
		return nil, nil, &ServiceError{StatusCode: 401, Message: "Email not verified"}
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("Failed to generate tokens", zap.Error(err))
		return nil, nil, internal("Failed to log in")
	}
	return pair, user, nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, *ServiceError) {
	claims, err := s.tokens.ValidateToken(refreshToken, "refresh")
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}
	if user.IsBlocked || !user.IsActive {
		return nil, forbidden("Account is blocked or inactive")
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("Failed to generate tokens", zap.Error(err))
		return nil, internal("Failed to refresh tokens")
	}
	return pair, nil
}
