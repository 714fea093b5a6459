package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moneyInput struct {
	Amount decimal.Decimal `validate:"cents,gte=0"`
}

type refInput struct {
	ID   uuid.UUID `validate:"uuid_required"`
	Name string    `validate:"required"`
}

func TestValidateStruct_Decimal(t *testing.T) {
	assert.Empty(t, ValidateStruct(moneyInput{Amount: decimal.RequireFromString("1.25")}))
	assert.Empty(t, ValidateStruct(moneyInput{Amount: decimal.Zero}))

	errs := ValidateStruct(moneyInput{Amount: decimal.RequireFromString("-0.50")})
	require.Len(t, errs, 1)
	assert.Equal(t, "gte", errs[0].Tag)

	errs = ValidateStruct(moneyInput{Amount: decimal.RequireFromString("1.005")})
	require.Len(t, errs, 1)
	assert.Equal(t, "cents", errs[0].Tag)
}

func TestValidateStruct_CentsBeyondFloatPrecision(t *testing.T) {
	for _, raw := range []string{"0.100000000000000001", "1.000000000000000001", "123456789012345.001"} {
		errs := ValidateStruct(&moneyInput{Amount: decimal.RequireFromString(raw)})
		require.Len(t, errs, 1, raw)
		assert.Equal(t, "cents", errs[0].Tag, raw)
	}
	assert.Empty(t, ValidateStruct(&moneyInput{Amount: decimal.RequireFromString("123456789012345.01")}))
}

func TestValidateStruct_UUIDRequired(t *testing.T) {
	errs := ValidateStruct(refInput{Name: "chips"})
	require.Len(t, errs, 1)
	assert.Equal(t, "refInput.ID", errs[0].FailedField)
	assert.Equal(t, "uuid_required", errs[0].Tag)

	assert.Empty(t, ValidateStruct(refInput{ID: uuid.New(), Name: "chips"}))
}
