package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestockTarget is the stock level suggestions aim to restore.
const RestockTarget = 10

type ShoppingSuggestion struct {
	SnackID           uuid.UUID       `json:"snack_id"`
	Name              string          `json:"name"`
	Stock             int             `json:"stock"`
	Price             decimal.Decimal `json:"price"`
	ImageURL          *string         `json:"image_url,omitempty"`
	SuggestedQuantity int             `json:"suggested_quantity"`
}

type ShoppingSuggestions struct {
	Snacks          []ShoppingSuggestion `json:"snacks"`
	PendingRequests []model.SnackRequest `json:"pending_requests"`
}

type ShoppingListItemInput struct {
	SnackID  *uuid.UUID `json:"snack_id"`
	Name     string     `json:"name" validate:"max=255"`
	Quantity int        `json:"quantity" validate:"gte=0"`
	Notes    string     `json:"notes" validate:"max=500"`
}

type ShoppingListInput struct {
	Items []ShoppingListItemInput `json:"items" validate:"required,min=1,dive"`
}

type ShoppingListItem struct {
	SnackID       *uuid.UUID          `json:"snack_id,omitempty"`
	Name          string              `json:"name"`
	Quantity      int                 `json:"quantity"`
	CurrentStock  *int                `json:"current_stock,omitempty"`
	UnitPrice     decimal.NullDecimal `json:"unit_price"`
	EstimatedCost decimal.Decimal     `json:"estimated_cost"`
	Notes         string              `json:"notes,omitempty"`
}

type ShoppingList struct {
	GeneratedAt    time.Time          `json:"generated_at"`
	Items          []ShoppingListItem `json:"items"`
	TotalQuantity  int                `json:"total_quantity"`
	EstimatedTotal decimal.Decimal    `json:"estimated_total"`
}

type ShoppingListService interface {
	Suggestions(caller model.Identity) (*ShoppingSuggestions, error)
	Compile(caller model.Identity, input *ShoppingListInput) (*ShoppingList, error)
}

type shoppingListService struct {
	snackRepo   repository.SnackRepository
	requestRepo repository.SnackRequestRepository
}

func NewShoppingListService(snackRepo repository.SnackRepository, requestRepo repository.SnackRequestRepository) ShoppingListService {
	return &shoppingListService{snackRepo: snackRepo, requestRepo: requestRepo}
}

// Suggestions lists available snacks lowest stock first with a quantity that
// brings each back to RestockTarget, plus the pending snack requests.
func (s *shoppingListService) Suggestions(caller model.Identity) (*ShoppingSuggestions, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	snacks, err := s.snackRepo.FindAvailable()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(snacks, func(i, j int) bool { return snacks[i].Stock < snacks[j].Stock })

	suggestions := make([]ShoppingSuggestion, 0, len(snacks))
	for _, snack := range snacks {
		suggestions = append(suggestions, ShoppingSuggestion{
			SnackID:           snack.ID,
			Name:              snack.Name,
			Stock:             snack.Stock,
			Price:             snack.Price,
			ImageURL:          snack.ImageURL,
			SuggestedQuantity: suggestedQuantity(snack.Stock),
		})
	}

	pending := model.RequestPending
	requests, err := s.requestRepo.FindAll(&pending)
	if err != nil {
		return nil, err
	}

	return &ShoppingSuggestions{Snacks: suggestions, PendingRequests: requests}, nil
}

func suggestedQuantity(stock int) int {
	if q := RestockTarget - stock; q > 1 {
		return q
	}
	return 1
}

// Compile merges duplicate entries, by snack id or case-insensitive name,
// and prices the catalog items. A zero quantity counts as one.
func (s *shoppingListService) Compile(caller model.Identity, input *ShoppingListInput) (*ShoppingList, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	list := &ShoppingList{
		GeneratedAt:    time.Now().UTC(),
		Items:          []ShoppingListItem{},
		EstimatedTotal: decimal.Zero,
	}
	index := make(map[string]int)

	for _, in := range input.Items {
		item := ShoppingListItem{
			Name:     strings.TrimSpace(in.Name),
			Quantity: in.Quantity,
			Notes:    strings.TrimSpace(in.Notes),
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}

		var key string
		if in.SnackID != nil {
			snack, err := s.snackRepo.FindByID(*in.SnackID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: snack %s not found", ErrValidation, *in.SnackID)
				}
				return nil, err
			}
			id := snack.ID
			stock := snack.Stock
			item.SnackID = &id
			item.CurrentStock = &stock
			item.UnitPrice = decimal.NewNullDecimal(snack.Price)
			if item.Name == "" {
				item.Name = snack.Name
			}
			key = "id:" + id.String()
		} else {
			if item.Name == "" {
				return nil, fmt.Errorf("%w: item name is required", ErrValidation)
			}
			key = "name:" + strings.ToLower(item.Name)
		}

		if pos, ok := index[key]; ok {
			existing := &list.Items[pos]
			existing.Quantity += item.Quantity
			if item.Notes != "" {
				if existing.Notes != "" {
					existing.Notes += "; "
				}
				existing.Notes += item.Notes
			}
			continue
		}
		index[key] = len(list.Items)
		list.Items = append(list.Items, item)
	}

	for i := range list.Items {
		item := &list.Items[i]
		item.EstimatedCost = decimal.Zero
		if item.UnitPrice.Valid {
			item.EstimatedCost = item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		list.TotalQuantity += item.Quantity
		list.EstimatedTotal = list.EstimatedTotal.Add(item.EstimatedCost)
	}
	return list, nil
}
