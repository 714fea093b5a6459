package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a person with a prepaid balance. Users are never deleted.
type User struct {
	BaseModel
	Email       string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	DisplayName string          `gorm:"type:varchar(255)" json:"display_name"`
	PictureURL  string          `gorm:"type:varchar(1024)" json:"picture_url,omitempty"`
	Balance     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	IsAdmin     bool            `gorm:"not null" json:"is_admin"`
}

// Identity returns the authenticated view of the user.
func (u *User) Identity() Identity {
	return Identity{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
	}
}

// UserResponse is used for API responses
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	PictureURL  string          `json:"picture_url,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	IsAdmin     bool            `json:"is_admin"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PictureURL:  u.PictureURL,
		Balance:     u.Balance,
		IsAdmin:     u.IsAdmin,
	}
}
