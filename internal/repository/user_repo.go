package repository

import (
	"github.com/EnmaSantos/office-snack-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindAll() ([]model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	// FindByIDForUpdate locks the user row until tx ends.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.User, error)
	UpdateBalance(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal, updatedBy string) error
	UpdateAdmin(tx *gorm.DB, id uuid.UUID, isAdmin bool, updatedBy string) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("display_name ASC").Order("email ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateBalance(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal, updatedBy string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_by": updatedBy,
		}).Error
}

func (r *userRepo) UpdateAdmin(tx *gorm.DB, id uuid.UUID, isAdmin bool, updatedBy string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_admin":   isAdmin,
			"updated_by": updatedBy,
		}).Error
}
