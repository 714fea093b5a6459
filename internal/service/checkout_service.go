package service

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/ws"
	"github.com/EnmaSantos/office-snack-app/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutInput is a cart of snack ids; a repeated id buys that snack again.
// UserID defaults to the caller and may name someone else only for admins.
type CheckoutInput struct {
	UserID   *uuid.UUID  `json:"user_id"`
	SnackIDs []uuid.UUID `json:"snack_ids"`
}

type CheckoutResult struct {
	UserID       uuid.UUID           `json:"user_id"`
	Total        decimal.Decimal     `json:"total"`
	NewBalance   decimal.Decimal     `json:"new_balance"`
	Transactions []model.Transaction `json:"transactions"`
}

type CheckoutService interface {
	Checkout(caller model.Identity, input *CheckoutInput) (*CheckoutResult, error)
}

type checkoutService struct {
	userRepo  repository.UserRepository
	snackRepo repository.SnackRepository
	txRepo    repository.TransactionRepository
	db        *gorm.DB
	events    Broadcaster
}

func NewCheckoutService(
	userRepo repository.UserRepository,
	snackRepo repository.SnackRepository,
	txRepo repository.TransactionRepository,
	db *gorm.DB,
	events Broadcaster,
) CheckoutService {
	return &checkoutService{
		userRepo:  userRepo,
		snackRepo: snackRepo,
		txRepo:    txRepo,
		db:        db,
		events:    orNoop(events),
	}
}

// Checkout charges the whole cart or nothing. The buyer row is locked first,
// then the snack rows in ascending id order, so concurrent carts cannot
// deadlock on each other or sell the same unit twice.
func (s *checkoutService) Checkout(caller model.Identity, input *CheckoutInput) (*CheckoutResult, error) {
	if len(input.SnackIDs) == 0 {
		return nil, ErrEmptyCart
	}

	buyerID := caller.UserID
	if input.UserID != nil && *input.UserID != caller.UserID {
		if !caller.IsAdmin {
			return nil, ErrForbidden
		}
		buyerID = *input.UserID
	}

	quantities := make(map[uuid.UUID]int, len(input.SnackIDs))
	for _, id := range input.SnackIDs {
		quantities[id]++
	}
	ids := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	var result CheckoutResult
	var sold []model.Snack

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(tx, buyerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		snacks, err := s.snackRepo.FindByIDsForUpdate(tx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]model.Snack, len(snacks))
		for _, snack := range snacks {
			byID[snack.ID] = snack
		}

		remaining := make(map[uuid.UUID]int, len(byID))
		for id, snack := range byID {
			remaining[id] = snack.Stock
		}
		total := decimal.Zero
		for _, id := range input.SnackIDs {
			snack, ok := byID[id]
			if !ok {
				return fmt.Errorf("%w: %s", ErrCartItemNotFound, id)
			}
			if !snack.IsAvailable {
				return fmt.Errorf("%w: %s", ErrSnackUnavailable, snack.Name)
			}
			if remaining[id] <= 0 {
				return fmt.Errorf("%w: %s", ErrOutOfStock, snack.Name)
			}
			remaining[id]--
			total = total.Add(snack.Price)
		}

		if user.Balance.LessThan(total) {
			return fmt.Errorf("%w: balance %s, total %s", ErrInsufficientFunds, user.Balance.StringFixed(2), total.StringFixed(2))
		}

		for _, id := range ids {
			if err := s.snackRepo.DecrementStock(tx, id, quantities[id], caller.Actor()); err != nil {
				if errors.Is(err, repository.ErrStockChanged) {
					return ErrConcurrencyConflict
				}
				return err
			}
		}

		newBalance := user.Balance.Sub(total)
		if err := s.userRepo.UpdateBalance(tx, user.ID, newBalance, caller.Actor()); err != nil {
			return err
		}

		now := time.Now().UTC()
		rows := make([]*model.Transaction, 0, len(input.SnackIDs))
		for _, id := range input.SnackIDs {
			snackID := id
			rows = append(rows, &model.Transaction{
				UserID:    user.ID,
				SnackID:   &snackID,
				Amount:    byID[id].Price.Neg(),
				Kind:      model.TxPurchase,
				CreatedBy: caller.Actor(),
				CreatedAt: now,
			})
		}
		if err := s.txRepo.Create(tx, rows...); err != nil {
			return err
		}

		result.UserID = user.ID
		result.Total = total
		result.NewBalance = newBalance
		result.Transactions = make([]model.Transaction, len(rows))
		for i, row := range rows {
			result.Transactions[i] = *row
		}
		for _, id := range ids {
			snack := byID[id]
			snack.Stock -= quantities[id]
			sold = append(sold, snack)
		}
		return nil
	})
	if err != nil {
		if database.IsConflict(err) {
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(sold))
	for i := range sold {
		items = append(items, map[string]interface{}{
			"id":    sold[i].ID,
			"name":  sold[i].Name,
			"stock": sold[i].Stock,
		})
	}
	s.events.Publish(ws.Event{
		Type:   "stock_update",
		Action: "checkout",
		Data:   map[string]interface{}{"snacks": items},
	})

	return &result, nil
}
