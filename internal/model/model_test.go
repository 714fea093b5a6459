package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSnackRequestStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Purchased"} {
		status, ok := ParseSnackRequestStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, SnackRequestStatus(s), status)
	}

	for _, s := range []string{"", "pending", "Rejected", "PURCHASED"} {
		_, ok := ParseSnackRequestStatus(s)
		assert.False(t, ok, s)
	}
}

func TestUserIdentity(t *testing.T) {
	u := User{Email: "a@byui.edu", DisplayName: "A", IsAdmin: true, Balance: decimal.RequireFromString("2.50")}
	u.ID = uuid.New()

	id := u.Identity()
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "a@byui.edu", id.Email)
	assert.True(t, id.IsAdmin)
	assert.Equal(t, u.ID.String(), id.Actor())
	assert.Equal(t, "system", Identity{}.Actor())
}
