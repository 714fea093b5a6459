package model

import "github.com/google/uuid"

type SnackRequestStatus string

const (
	RequestPending   SnackRequestStatus = "Pending"
	RequestApproved  SnackRequestStatus = "Approved"
	RequestPurchased SnackRequestStatus = "Purchased"
)

// ParseSnackRequestStatus accepts only the known statuses, matched exactly.
func ParseSnackRequestStatus(s string) (SnackRequestStatus, bool) {
	switch SnackRequestStatus(s) {
	case RequestPending, RequestApproved, RequestPurchased:
		return SnackRequestStatus(s), true
	}
	return "", false
}

type SnackRequest struct {
	BaseModel
	SnackName         string             `gorm:"type:varchar(255);not null" json:"snack_name"`
	Status            SnackRequestStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	RequestedByUserID uuid.UUID          `gorm:"type:uuid;not null;index" json:"requested_by_user_id"`
	RequestedByUser   *User              `gorm:"foreignKey:RequestedByUserID" json:"requested_by,omitempty"`
}
