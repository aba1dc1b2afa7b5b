package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/pkg/auth"
	"github.com/craftline/storefront/pkg/logger"
)

// AuthService handles registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=255"`
	Username  string `json:"username" validate:"required,max=255"`
	Firstname string `json:"firstname" validate:"nullable,max=255"`
}

// Register creates a new account with a bcrypt-hashed password and the
// default user role. Returns ErrEmailTaken when the email already has
// an account.
func (s *AuthService) Register(in RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := s.users.EmailExists(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:     email,
		Password:  hash,
		Username:  strings.TrimSpace(in.Username),
		Firstname: strings.TrimSpace(in.Firstname),
		Role:      models.RoleUser,
	}

	if err := s.users.Create(&user); err != nil {
		// Concurrent registration can slip past EmailExists; the unique
		// index is the final arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	logger.Info("account registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and issues a signed JWT.
//
// A missing field is ErrMissingCredentials. An unknown email and a
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, user.Email, user.Role)
}
