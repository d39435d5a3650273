package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"gorm.io/gorm"
)

type userRepo struct {
	*baseRepo[domain.User]
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepo{baseRepo: newBaseRepo[domain.User](db, "users")}
}

func (r *userRepo) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by username '%s': %w", userName, err)
	}
	return &user, nil
}
