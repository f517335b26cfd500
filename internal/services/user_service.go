package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user with a hashed password.
func (s *userService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrEmptyField, "Username and/or password must not be empty.")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	return user, nil
}

// Authenticate verifies the username/password pair and returns the user.
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}
