package repository

import (
	"github.com/EnmaSantos/office-snack-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SnackRequestRepository interface {
	Create(request *model.SnackRequest) error
	FindAll(status *model.SnackRequestStatus) ([]model.SnackRequest, error)
	FindByID(id uuid.UUID) (*model.SnackRequest, error)
	UpdateStatus(id uuid.UUID, status model.SnackRequestStatus, updatedBy string) error
	Delete(id uuid.UUID, deletedBy string) error
}

type snackRequestRepo struct {
	db *gorm.DB
}

func NewSnackRequestRepo(db *gorm.DB) SnackRequestRepository {
	return &snackRequestRepo{db}
}

func (r *snackRequestRepo) Create(request *model.SnackRequest) error {
	return r.db.Create(request).Error
}

// FindAll lists requests newest first, optionally narrowed to one status.
func (r *snackRequestRepo) FindAll(status *model.SnackRequestStatus) ([]model.SnackRequest, error) {
	requests := []model.SnackRequest{}
	query := r.db.Preload("RequestedByUser").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&requests).Error
	return requests, err
}

func (r *snackRequestRepo) FindByID(id uuid.UUID) (*model.SnackRequest, error) {
	var request model.SnackRequest
	if err := r.db.Preload("RequestedByUser").First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *snackRequestRepo) UpdateStatus(id uuid.UUID, status model.SnackRequestStatus, updatedBy string) error {
	res := r.db.Model(&model.SnackRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *snackRequestRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.SnackRequest{}).Where("id = ?", id).Update("deleted_by", deletedBy)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&model.SnackRequest{}, "id = ?", id).Error
	})
}
