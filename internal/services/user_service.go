package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create registers a user with a bcrypt-hashed password. Email is
// normalized so the uniqueness check can't be dodged with casing.
func (s *UserService) Create(req *dtos.UserCreationRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, apperr.Storage("Error saving user", err)
	}
	if existing > 0 {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("Error saving user", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(hash),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, apperr.Storage("Error saving user", err)
	}
	return user, nil
}

// List returns all users. The password hash never serializes.
func (s *UserService) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.DB.Order("created_at, id").Find(&users).Error; err != nil {
		return nil, apperr.Storage("Error fetching users", err)
	}
	return users, nil
}
