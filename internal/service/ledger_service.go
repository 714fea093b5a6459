package service

import (
	"errors"
	"fmt"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdjustBalanceInput struct {
	UserID uuid.UUID       `json:"user_id" validate:"uuid_required"`
	Amount decimal.Decimal `json:"amount" validate:"cents"`
}

type AddBalanceInput struct {
	Amount decimal.Decimal `json:"amount" validate:"cents,gt=0"`
}

type ToggleAdminInput struct {
	UserID uuid.UUID `json:"user_id" validate:"uuid_required"`
}

type BalanceResult struct {
	UserID     uuid.UUID       `json:"user_id"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

type AdminStatusResult struct {
	UserID  uuid.UUID `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
}

// Reconciliation compares a stored balance with the sum of its ledger rows.
type Reconciliation struct {
	UserID      uuid.UUID       `json:"user_id"`
	Balance     decimal.Decimal `json:"balance"`
	LedgerTotal decimal.Decimal `json:"ledger_total"`
	Difference  decimal.Decimal `json:"difference"`
	Balanced    bool            `json:"balanced"`
}

type LedgerService interface {
	AdjustBalance(caller model.Identity, input *AdjustBalanceInput) (*BalanceResult, error)
	AddSelfBalance(caller model.Identity, input *AddBalanceInput) (*BalanceResult, error)
	ToggleAdminStatus(caller model.Identity, input *ToggleAdminInput) (*AdminStatusResult, error)
	Reconcile(caller model.Identity, userID uuid.UUID) (*Reconciliation, error)
}

type ledgerService struct {
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
	db       *gorm.DB
}

func NewLedgerService(userRepo repository.UserRepository, txRepo repository.TransactionRepository, db *gorm.DB) LedgerService {
	return &ledgerService{userRepo: userRepo, txRepo: txRepo, db: db}
}

func (s *ledgerService) AdjustBalance(caller model.Identity, input *AdjustBalanceInput) (*BalanceResult, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must not be zero", ErrInvalidAmount)
	}
	if !isCents(input.Amount) {
		return nil, fmt.Errorf("%w: amount must have at most two decimal places", ErrInvalidAmount)
	}
	return s.credit(caller, input.UserID, input.Amount, model.TxAdjustment)
}

func (s *ledgerService) AddSelfBalance(caller model.Identity, input *AddBalanceInput) (*BalanceResult, error) {
	if input.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if !isCents(input.Amount) {
		return nil, fmt.Errorf("%w: amount must have at most two decimal places", ErrInvalidAmount)
	}
	return s.credit(caller, caller.UserID, input.Amount, model.TxDeposit)
}

// credit applies amount to the locked user row and appends the matching ledger row.
func (s *ledgerService) credit(caller model.Identity, userID uuid.UUID, amount decimal.Decimal, kind model.TransactionKind) (*BalanceResult, error) {
	var newBalance decimal.Decimal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		newBalance = user.Balance.Add(amount)
		if err := s.userRepo.UpdateBalance(tx, user.ID, newBalance, caller.Actor()); err != nil {
			return err
		}

		return s.txRepo.Create(tx, &model.Transaction{
			UserID:    user.ID,
			Amount:    amount,
			Kind:      kind,
			CreatedBy: caller.Actor(),
		})
	})
	if err != nil {
		if database.IsConflict(err) {
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	return &BalanceResult{UserID: userID, NewBalance: newBalance}, nil
}

func (s *ledgerService) ToggleAdminStatus(caller model.Identity, input *ToggleAdminInput) (*AdminStatusResult, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.UserID == caller.UserID {
		return nil, ErrSelfTarget
	}

	var result AdminStatusResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(tx, input.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		result = AdminStatusResult{UserID: user.ID, IsAdmin: !user.IsAdmin}
		return s.userRepo.UpdateAdmin(tx, user.ID, result.IsAdmin, caller.Actor())
	})
	if err != nil {
		if database.IsConflict(err) {
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}
	return &result, nil
}

func (s *ledgerService) Reconcile(caller model.Identity, userID uuid.UUID) (*Reconciliation, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	total, err := s.txRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	diff := user.Balance.Sub(total)
	return &Reconciliation{
		UserID:      user.ID,
		Balance:     user.Balance,
		LedgerTotal: total,
		Difference:  diff,
		Balanced:    diff.IsZero(),
	}, nil
}
