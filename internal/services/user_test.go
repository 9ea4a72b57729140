package service_test

import (
	"context"
	"database/sql"
	"testing"

	apperrors "github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/models"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)

	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)

	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRateLimitRepository struct {
	mock.Mock
}

func (m *mockRateLimitRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

var testJWTKey = []byte("unit-test-signing-key")

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockUserRepository)
		users := service.NewUserService(repo, new(mockRateLimitRepository), testJWTKey)

		repo.On("GetUserByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows)
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil)

		user, err := users.Register(ctx, &models.RegisterRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := new(mockUserRepository)
		users := service.NewUserService(repo, new(mockRateLimitRepository), testJWTKey)

		repo.On("GetUserByEmail", ctx, "taken@example.com").
			Return(&models.User{Email: "taken@example.com"}, nil)

		_, err := users.Register(ctx, &models.RegisterRequest{
			Name:     "Someone",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		require.Error(t, err)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, appErr.Code)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success Issues Signed Token", func(t *testing.T) {
		repo := new(mockUserRepository)
		limiter := new(mockRateLimitRepository)
		users := service.NewUserService(repo, limiter, testJWTKey)

		limiter.On("CheckLoginRateLimit", ctx, "user@example.com").Return(true, 4, 0, nil)
		repo.On("GetUserByEmail", ctx, "user@example.com").Return(&models.User{
			ID:       userID,
			Email:    "user@example.com",
			Password: hashedPassword(t, "secret123"),
		}, nil)

		result, err := users.Login(ctx, &models.LoginRequest{
			Email:    "user@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Positive(t, result.ExpiresIn)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (any, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := new(mockUserRepository)
		limiter := new(mockRateLimitRepository)
		users := service.NewUserService(repo, limiter, testJWTKey)

		limiter.On("CheckLoginRateLimit", ctx, "user@example.com").Return(true, 2, 0, nil)
		repo.On("GetUserByEmail", ctx, "user@example.com").Return(&models.User{
			ID:       userID,
			Email:    "user@example.com",
			Password: hashedPassword(t, "secret123"),
		}, nil)

		result, err := users.Login(ctx, &models.LoginRequest{
			Email:    "user@example.com",
			Password: "wrong",
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, result.Token)
		assert.Equal(t, 2, result.RemainingTries)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		repo := new(mockUserRepository)
		limiter := new(mockRateLimitRepository)
		users := service.NewUserService(repo, limiter, testJWTKey)

		limiter.On("CheckLoginRateLimit", ctx, "ghost@example.com").Return(true, 4, 0, nil)
		repo.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		result, err := users.Login(ctx, &models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid email or password", result.Message)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		repo := new(mockUserRepository)
		limiter := new(mockRateLimitRepository)
		users := service.NewUserService(repo, limiter, testJWTKey)

		limiter.On("CheckLoginRateLimit", ctx, "user@example.com").Return(false, 0, 37, nil)

		result, err := users.Login(ctx, &models.LoginRequest{
			Email:    "user@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, 37, result.RetryAfter)
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := new(mockUserRepository)
	users := service.NewUserService(repo, new(mockRateLimitRepository), testJWTKey)

	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Name: "Asha"}, nil)

	user, err := users.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)

	missing := uuid.New()
	repo.On("GetUserByID", ctx, missing).Return(nil, sql.ErrNoRows)

	_, err = users.GetUserByID(ctx, missing)
	assert.Error(t, err)
}
