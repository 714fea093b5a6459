package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("snack request not found")
	ErrInvalidStatus   = errors.New("invalid snack request status")
)

type CreateSnackRequestInput struct {
	SnackName string `json:"snack_name" validate:"required,max=255"`
}

type UpdateSnackRequestInput struct {
	Status string `json:"status" validate:"required"`
}

type SnackRequestService interface {
	Create(caller model.Identity, input *CreateSnackRequestInput) (*model.SnackRequest, error)
	List(caller model.Identity, status string) ([]model.SnackRequest, error)
	UpdateStatus(caller model.Identity, id uuid.UUID, input *UpdateSnackRequestInput) (*model.SnackRequest, error)
	Delete(caller model.Identity, id uuid.UUID) error
}

type snackRequestService struct {
	requestRepo repository.SnackRequestRepository
}

func NewSnackRequestService(requestRepo repository.SnackRequestRepository) SnackRequestService {
	return &snackRequestService{requestRepo: requestRepo}
}

func (s *snackRequestService) Create(caller model.Identity, input *CreateSnackRequestInput) (*model.SnackRequest, error) {
	input.SnackName = strings.TrimSpace(input.SnackName)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	request := &model.SnackRequest{
		SnackName:         input.SnackName,
		Status:            model.RequestPending,
		RequestedByUserID: caller.UserID,
	}
	request.CreatedBy = caller.Actor()
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List returns requests newest first; a non-empty status narrows the result.
func (s *snackRequestService) List(caller model.Identity, status string) ([]model.SnackRequest, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if status == "" {
		return s.requestRepo.FindAll(nil)
	}
	parsed, ok := model.ParseSnackRequestStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.requestRepo.FindAll(&parsed)
}

func (s *snackRequestService) UpdateStatus(caller model.Identity, id uuid.UUID, input *UpdateSnackRequestInput) (*model.SnackRequest, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	status, ok := model.ParseSnackRequestStatus(strings.TrimSpace(input.Status))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, input.Status)
	}

	if err := s.requestRepo.UpdateStatus(id, status, caller.Actor()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return s.requestRepo.FindByID(id)
}

func (s *snackRequestService) Delete(caller model.Identity, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.requestRepo.Delete(id, caller.Actor()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}
