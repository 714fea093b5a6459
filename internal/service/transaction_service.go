package service

import (
	"errors"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionService reads the ledger. Every call re-runs the join so names
// and prices always reflect the current user and snack rows.
type TransactionService interface {
	ListMine(caller model.Identity) ([]model.TransactionView, error)
	ListByUser(caller model.Identity, userID uuid.UUID) ([]model.TransactionView, error)
	ListAll(caller model.Identity) ([]model.TransactionView, error)
}

type transactionService struct {
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
}

func NewTransactionService(userRepo repository.UserRepository, txRepo repository.TransactionRepository) TransactionService {
	return &transactionService{userRepo: userRepo, txRepo: txRepo}
}

func (s *transactionService) ListMine(caller model.Identity) ([]model.TransactionView, error) {
	return s.txRepo.FindViewsByUser(caller.UserID)
}

func (s *transactionService) ListByUser(caller model.Identity, userID uuid.UUID) ([]model.TransactionView, error) {
	if userID != caller.UserID {
		if err := requireAdmin(caller); err != nil {
			return nil, err
		}
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.txRepo.FindViewsByUser(userID)
}

func (s *transactionService) ListAll(caller model.Identity) ([]model.TransactionView, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.txRepo.FindAllViews()
}
