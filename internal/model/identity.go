package model

import "github.com/google/uuid"

// Identity is the verified caller attached to a request after authentication.
type Identity struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	IsAdmin     bool      `json:"is_admin"`
}

// Actor is the value written to audit columns.
func (i Identity) Actor() string {
	if i.UserID == uuid.Nil {
		return "system"
	}
	return i.UserID.String()
}
