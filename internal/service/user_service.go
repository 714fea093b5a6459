package service

import (
	"errors"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(caller model.Identity) (*model.UserResponse, error)
	ListUsers(caller model.Identity) ([]model.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(caller model.Identity) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

// ListUsers returns every user with balance and admin flag, ordered by name.
func (s *userService) ListUsers(caller model.Identity) ([]model.UserResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}
