package services

import (
	"resto_manager/internal/models"
	"resto_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	GetUsersByRole(role string) ([]models.User, error)
	UpdateUser(user *models.User) error
	ToggleStatus(id uint) (*models.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	if user.Username == "" || user.Email == "" {
		return validationf("username and email are required")
	}
	if len(password) < 6 {
		return validationf("password must be at least 6 characters")
	}
	if user.Role == "" {
		user.Role = string(models.RoleWaiter)
	}
	if !models.ValidRole(user.Role) {
		return validationf("invalid role: %s", user.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Create(user)
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetUsersByRole(role string) ([]models.User, error) {
	if !models.ValidRole(role) {
		return nil, validationf("invalid role: %s", role)
	}
	return s.userRepo.GetByRole(role)
}

func (s *userService) UpdateUser(user *models.User) error {
	existing, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return asNotFound(err)
	}
	if user.Role != "" && !models.ValidRole(user.Role) {
		return validationf("invalid role: %s", user.Role)
	}
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	return s.userRepo.Update(user)
}

func (s *userService) ToggleStatus(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return s.userRepo.Delete(id)
}
