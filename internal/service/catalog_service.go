package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SnackInput is the full set of mutable snack fields.
// A nil IsAvailable means true on create and unchanged on update.
type SnackInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price" validate:"cents,gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsAvailable *bool           `json:"is_available"`
	ImageURL    *string         `json:"image_url" validate:"omitempty,url,max=1024"`
}

func (in *SnackInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	if in.ImageURL != nil {
		trimmed := strings.TrimSpace(*in.ImageURL)
		if trimmed == "" {
			in.ImageURL = nil
		} else {
			in.ImageURL = &trimmed
		}
	}
}

func (in *SnackInput) validate() error {
	in.normalize()
	if err := validateInput(in); err != nil {
		return err
	}
	if !isCents(in.Price) {
		return fmt.Errorf("%w: price must have at most two decimal places", ErrInvalidAmount)
	}
	return nil
}

type CatalogService interface {
	CreateSnack(caller model.Identity, input *SnackInput) (*model.Snack, error)
	UpdateSnack(caller model.Identity, id uuid.UUID, input *SnackInput) (*model.Snack, error)
	DeleteSnack(caller model.Identity, id uuid.UUID) error
	GetSnack(id uuid.UUID) (*model.Snack, error)
	ListAvailable() ([]model.Snack, error)
	ListAll(caller model.Identity) ([]model.Snack, error)
}

type catalogService struct {
	snackRepo repository.SnackRepository
	db        *gorm.DB
	events    Broadcaster
}

func NewCatalogService(snackRepo repository.SnackRepository, db *gorm.DB, events Broadcaster) CatalogService {
	return &catalogService{snackRepo: snackRepo, db: db, events: orNoop(events)}
}

func (s *catalogService) CreateSnack(caller model.Identity, input *SnackInput) (*model.Snack, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	snack := &model.Snack{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		IsAvailable: true,
		ImageURL:    input.ImageURL,
	}
	if input.IsAvailable != nil {
		snack.IsAvailable = *input.IsAvailable
	}
	snack.CreatedBy = caller.Actor()
	snack.UpdatedBy = caller.Actor()

	if err := s.snackRepo.Create(snack); err != nil {
		return nil, err
	}

	s.events.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "snack_created",
		Data:    snackEventData(snack),
		User:    actorOf(caller),
		Message: fmt.Sprintf("%s added '%s'", caller.DisplayName, snack.Name),
	})
	return snack, nil
}

func (s *catalogService) UpdateSnack(caller model.Identity, id uuid.UUID, input *SnackInput) (*model.Snack, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	var updated model.Snack
	var oldStock int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		locked, err := s.snackRepo.FindByIDsForUpdate(tx, []uuid.UUID{id})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return ErrSnackNotFound
		}

		existing := locked[0]
		oldStock = existing.Stock
		existing.Name = input.Name
		existing.Price = input.Price
		existing.Stock = input.Stock
		existing.ImageURL = input.ImageURL
		if input.IsAvailable != nil {
			existing.IsAvailable = *input.IsAvailable
		}
		existing.UpdatedBy = caller.Actor()

		if err := s.snackRepo.Update(tx, &existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	data := snackEventData(&updated)
	data["old_stock"] = oldStock
	s.events.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "snack_updated",
		Data:    data,
		User:    actorOf(caller),
		Message: fmt.Sprintf("%s updated '%s'", caller.DisplayName, updated.Name),
	})
	return &updated, nil
}

func (s *catalogService) DeleteSnack(caller model.Identity, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.snackRepo.Delete(id, caller.Actor()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSnackNotFound
		}
		return err
	}

	s.events.Publish(ws.Event{
		Type:   "stock_update",
		Action: "snack_deleted",
		Data:   map[string]interface{}{"id": id},
		User:   actorOf(caller),
	})
	return nil
}

func (s *catalogService) GetSnack(id uuid.UUID) (*model.Snack, error) {
	snack, err := s.snackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnackNotFound
		}
		return nil, err
	}
	return snack, nil
}

func (s *catalogService) ListAvailable() ([]model.Snack, error) {
	return s.snackRepo.FindAvailable()
}

func (s *catalogService) ListAll(caller model.Identity) ([]model.Snack, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.snackRepo.FindAll()
}

func snackEventData(snack *model.Snack) map[string]interface{} {
	return map[string]interface{}{
		"id":           snack.ID,
		"name":         snack.Name,
		"price":        snack.Price,
		"stock":        snack.Stock,
		"is_available": snack.IsAvailable,
	}
}
