package repository

import (
	"errors"

	"github.com/EnmaSantos/office-snack-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStockChanged is returned when a guarded stock decrement matches no row.
var ErrStockChanged = errors.New("snack stock changed during update")

type SnackRepository interface {
	Create(snack *model.Snack) error
	FindAll() ([]model.Snack, error)
	FindAvailable() ([]model.Snack, error)
	FindByID(id uuid.UUID) (*model.Snack, error)
	Update(tx *gorm.DB, snack *model.Snack) error
	Delete(id uuid.UUID, deletedBy string) error
	// FindByIDsForUpdate locks the rows in ascending id order.
	FindByIDsForUpdate(tx *gorm.DB, ids []uuid.UUID) ([]model.Snack, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) error
}

type snackRepo struct {
	db *gorm.DB
}

func NewSnackRepo(db *gorm.DB) SnackRepository {
	return &snackRepo{db}
}

func (r *snackRepo) Create(snack *model.Snack) error {
	return r.db.Create(snack).Error
}

func (r *snackRepo) FindAll() ([]model.Snack, error) {
	var snacks []model.Snack
	err := r.db.Order("name ASC").Find(&snacks).Error
	return snacks, err
}

func (r *snackRepo) FindAvailable() ([]model.Snack, error) {
	var snacks []model.Snack
	err := r.db.Where("is_available = ?", true).Order("name ASC").Find(&snacks).Error
	return snacks, err
}

func (r *snackRepo) FindByID(id uuid.UUID) (*model.Snack, error) {
	var snack model.Snack
	if err := r.db.First(&snack, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &snack, nil
}

func (r *snackRepo) Update(tx *gorm.DB, snack *model.Snack) error {
	return tx.Save(snack).Error
}

func (r *snackRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Snack{}).Where("id = ?", id).Update("deleted_by", deletedBy)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&model.Snack{}, "id = ?", id).Error
	})
}

func (r *snackRepo) FindByIDsForUpdate(tx *gorm.DB, ids []uuid.UUID) ([]model.Snack, error) {
	var snacks []model.Snack
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&snacks).Error
	return snacks, err
}

// DecrementStock subtracts quantity only while enough stock remains.
func (r *snackRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) error {
	res := tx.Model(&model.Snack{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockChanged
	}
	return nil
}
