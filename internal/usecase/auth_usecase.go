package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "jobleet"

type authUsecase struct {
	userRepo domain.UserRepository
	secret   []byte
	expiry   time.Duration
	now      func() time.Time
}

func NewAuthUsecase(userRepo domain.UserRepository, secret string, expiry time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		secret:   []byte(secret),
		expiry:   expiry,
		now:      time.Now,
	}
}

func (u *authUsecase) Login(ctx context.Context, userName, password string) (*domain.AuthToken, error) {
	if len(u.secret) == 0 {
		return nil, apperror.ServiceUnavailable("Login is not configured", nil)
	}

	user, err := u.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := domain.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}

	now := u.now()
	expiresAt := now.Add(u.expiry)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("sign token: %w", err))
	}

	return &domain.AuthToken{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

// ParseToken returns the user id carried by a valid token.
func (u *authUsecase) ParseToken(tokenString string) (int64, error) {
	if len(u.secret) == 0 {
		return 0, apperror.ServiceUnavailable("Authentication is not configured", nil)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return u.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(u.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, apperror.New(http.StatusUnauthorized, "Invalid token", err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperror.Unauthorized("Invalid token subject")
	}
	return id, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
