package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func registeredUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := domain.HashPassword("Passw0rd!")
	require.NoError(t, err)
	return &domain.User{ID: 42, UserName: "jdoe", Email: "jdoe@example.com", PasswordHash: hash}
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	return appErr.Code
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should issue a token the usecase can parse", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUserName", ctx, "jdoe").Return(registeredUser(t), nil)
		uc := usecase.NewAuthUsecase(repo, "test-secret", time.Hour)

		token, err := uc.Login(ctx, "jdoe", "Passw0rd!")
		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

		id, err := uc.ParseToken(token.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUserName", ctx, "jdoe").Return(registeredUser(t), nil)
		uc := usecase.NewAuthUsecase(repo, "test-secret", time.Hour)

		_, err := uc.Login(ctx, "jdoe", "wrong")
		assert.Equal(t, 401, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Should not reveal unknown users", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUserName", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(repo, "test-secret", time.Hour)

		_, err := uc.Login(ctx, "ghost", "Passw0rd!")
		assert.Equal(t, 401, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Should surface store faults as internal errors", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUserName", ctx, "jdoe").Return(nil, errors.New("connection reset"))
		uc := usecase.NewAuthUsecase(repo, "test-secret", time.Hour)

		_, err := uc.Login(ctx, "jdoe", "Passw0rd!")
		assert.Equal(t, 500, appErrorCode(t, err))
	})

	t.Run("Should fail when no secret is configured", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), "", time.Hour)

		_, err := uc.Login(ctx, "jdoe", "Passw0rd!")
		assert.Equal(t, 503, appErrorCode(t, err))
	})
}

func TestParseToken(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(MockUserRepo), "test-secret", time.Hour)

	sign := func(secret string, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Issuer:    "jobleet",
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	id, err := uc.ParseToken(sign("test-secret", valid))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err = uc.ParseToken(sign("test-secret", expired))
	assert.Equal(t, 401, appErrorCode(t, err))

	_, err = uc.ParseToken(sign("other-secret", valid))
	assert.Equal(t, 401, appErrorCode(t, err))

	noExpiry := valid
	noExpiry.ExpiresAt = nil
	_, err = uc.ParseToken(sign("test-secret", noExpiry))
	assert.Error(t, err)

	_, err = uc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	repo.On("GetByID", ctx, int64(42)).Return(registeredUser(t), nil)
	repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewAuthUsecase(repo, "test-secret", time.Hour)

	user, err := uc.GetCurrentUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.UserName)

	_, err = uc.GetCurrentUser(ctx, 9)
	assert.Equal(t, 401, appErrorCode(t, err))
}

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("Should report redis disabled when not configured", func(t *testing.T) {
		status, err := usecase.NewHealthUsecase(ok, nil).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}, status)
	})

	t.Run("Should report the failing dependency", func(t *testing.T) {
		status, err := usecase.NewHealthUsecase(ok, down).Check(context.Background())
		assert.Equal(t, 503, appErrorCode(t, err))
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "ok", status["database"])
		assert.Equal(t, "down", status["redis"])
		assert.ErrorContains(t, err, "redis: dial tcp: connection refused")
	})
}
