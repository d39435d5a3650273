package domain

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           int64     `json:"Id" gorm:"primaryKey"`
	UserName     string    `json:"UserName" gorm:"size:50;not null;uniqueIndex"`
	Email        string    `json:"Email" gorm:"size:256;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"CreatedAt" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// RegisterUserModel is the registration payload. The password never leaves
// ToEntity in clear text.
type RegisterUserModel struct {
	UserName        string `json:"UserName"`
	Email           string `json:"Email"`
	Password        string `json:"Password"`
	ConfirmPassword string `json:"ConfirmPassword"`
}

const (
	passwordLengthMessage  = "Password must be between 8 and 100 characters"
	passwordPatternMessage = "Password must contain at least one uppercase letter, one lowercase letter, one digit, and one special character"
)

var RegisterUserModelRules = []validation.Rule{
	{Field: "UserName", Tag: "notblank", Message: "Username is required"},
	{Field: "UserName", Tag: "max=50", Message: "Username must not exceed 50 characters"},
	{Field: "Email", Tag: "notblank", Message: "Email address is required"},
	{Field: "Email", Tag: "email", Message: "Invalid email address"},
	{Field: "Password", Tag: "required", Message: "Password is required"},
	{Field: "Password", Tag: "min=8", Message: passwordLengthMessage},
	{Field: "Password", Tag: "max=100", Message: passwordLengthMessage},
	{Field: "Password", Tag: "strong_password", Message: passwordPatternMessage},
	{Field: "ConfirmPassword", Tag: "eqfield=Password", Message: "Passwords do not match"},
	{Field: "ConfirmPassword", Tag: "min=8", Message: passwordLengthMessage},
	{Field: "ConfirmPassword", Tag: "max=100", Message: passwordLengthMessage},
	{Field: "ConfirmPassword", Tag: "strong_password", Message: passwordPatternMessage},
}

func (m RegisterUserModel) ToEntity() (*User, error) {
	hash, err := HashPassword(m.Password)
	if err != nil {
		return nil, err
	}
	return &User{
		UserName:     strings.TrimSpace(m.UserName),
		Email:        strings.ToLower(strings.TrimSpace(m.Email)),
		PasswordHash: hash,
	}, nil
}

// passwordDigest feeds bcrypt a fixed 44-byte input; bcrypt ignores
// everything past 72 bytes and rejects longer inputs outright.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword returns nil when password matches a hash from HashPassword.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordDigest(password))
}

type UserRepository interface {
	Repository[User]
	GetByUserName(ctx context.Context, userName string) (*User, error)
}

type LoginRequest struct {
	UserName string `json:"UserName" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type AuthToken struct {
	Token     string    `json:"Token"`
	ExpiresAt time.Time `json:"ExpiresAt"`
}

type AuthUsecase interface {
	Login(ctx context.Context, userName, password string) (*AuthToken, error)
	ParseToken(token string) (int64, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}
