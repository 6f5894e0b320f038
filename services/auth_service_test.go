package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// ---- mocks ----

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) FindByRole(ctx context.Context, role string, page, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, role, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	args := m.Called(userID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}
func (m *MockTokenService) ValidateToken(tokenStr, expectedType string) (jwt.MapClaims, error) {
	args := m.Called(tokenStr, expectedType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jwt.MapClaims), args.Error(1)
}

// ---- tests ----

func activeUser(role string, password string) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &models.User{
		ID:         uuid.New(),
		Email:      "test@example.com",
		Password:   string(hashed),
		Role:       role,
		IsActive:   true,
		IsApproved: true,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	password := "strongpassword123"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		svc := NewAuthService(nil, mockRepo, mockTokens, nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, password)
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()
		mockTokens.On("GenerateTokenPair", user.ID.String(), user.Email, user.Role).
			Return(&TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

		pair, got, svcErr := svc.Login(ctx, user.Email, password)
		assert.Nil(t, svcErr)
		assert.Equal(t, "access", pair.AccessToken)
		assert.Equal(t, user.ID, got.ID)
		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		mockRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

		_, _, svcErr := svc.Login(ctx, "nobody@example.com", password)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, password)
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, svcErr := svc.Login(ctx, user.Email, "nope")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	})

	t.Run("Blocked account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, password)
		user.IsBlocked = true
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, svcErr := svc.Login(ctx, user.Email, password)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})

	t.Run("Unverified account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, password)
		user.IsActive = false
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, svcErr := svc.Login(ctx, user.Email, password)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	})

	t.Run("Unapproved seller can still log in", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		svc := NewAuthService(nil, mockRepo, mockTokens, nil, zap.NewNop())

		user := activeUser(models.RoleSeller, password)
		user.IsApproved = false
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()
		mockTokens.On("GenerateTokenPair", user.ID.String(), user.Email, user.Role).
			Return(&TokenPair{AccessToken: "a", RefreshToken: "r"}, nil).Once()

		_, got, svcErr := svc.Login(ctx, user.Email, password)
		assert.Nil(t, svcErr)
		assert.False(t, got.IsApproved)
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	newUnverified := func(role string) *models.User {
		expiresAt := time.Now().Add(10 * time.Minute)
		return &models.User{
			ID:               uuid.New(),
			Email:            "test@example.com",
			Role:             role,
			VerificationCode: "123456",
			CodeExpiresAt:    &expiresAt,
		}
	}

	t.Run("Customer is activated and approved", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := newUnverified(models.RoleCustomer)
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.IsActive && u.IsApproved && u.VerificationCode == ""
		})).Return(nil).Once()

		svcErr := svc.VerifyOTP(ctx, user.Email, "123456")
		assert.Nil(t, svcErr)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Seller stays unapproved", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := newUnverified(models.RoleSeller)
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.IsActive && !u.IsApproved
		})).Return(nil).Once()

		svcErr := svc.VerifyOTP(ctx, user.Email, "123456")
		assert.Nil(t, svcErr)
	})

	t.Run("Wrong code", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := newUnverified(models.RoleCustomer)
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		svcErr := svc.VerifyOTP(ctx, user.Email, "000000")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Expired code", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := newUnverified(models.RoleCustomer)
		expired := time.Now().Add(-1 * time.Minute)
		user.CodeExpiresAt = &expired
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		svcErr := svc.VerifyOTP(ctx, user.Email, "123456")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Already verified", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(nil, mockRepo, new(MockTokenService), nil, zap.NewNop())

		user := newUnverified(models.RoleCustomer)
		user.IsActive = true
		mockRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		svcErr := svc.VerifyOTP(ctx, user.Email, "123456")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		svc := NewAuthService(nil, mockRepo, mockTokens, nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, "pw")
		claims := jwt.MapClaims{"user_id": user.ID.String(), "email": user.Email, "role": user.Role}
		mockTokens.On("ValidateToken", "refresh-token", "refresh").Return(claims, nil).Once()
		mockRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		mockTokens.On("GenerateTokenPair", user.ID.String(), user.Email, user.Role).
			Return(&TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Once()

		pair, svcErr := svc.Refresh(ctx, "refresh-token")
		assert.Nil(t, svcErr)
		assert.Equal(t, "new-access", pair.AccessToken)
	})

	t.Run("Invalid token", func(t *testing.T) {
		mockTokens := new(MockTokenService)
		svc := NewAuthService(nil, new(MockUserRepository), mockTokens, nil, zap.NewNop())

		mockTokens.On("ValidateToken", "bad", "refresh").Return(nil, assert.AnError).Once()

		_, svcErr := svc.Refresh(ctx, "bad")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	})

	t.Run("Blocked user cannot refresh", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		svc := NewAuthService(nil, mockRepo, mockTokens, nil, zap.NewNop())

		user := activeUser(models.RoleCustomer, "pw")
		user.IsBlocked = true
		claims := jwt.MapClaims{"user_id": user.ID.String(), "email": user.Email, "role": user.Role}
		mockTokens.On("ValidateToken", "refresh-token", "refresh").Return(claims, nil).Once()
		mockRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()

		_, svcErr := svc.Refresh(ctx, "refresh-token")
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})
}
