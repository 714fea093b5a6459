// Package service holds the business rules for the snack store: catalog,
// checkout, the balance ledger, snack requests and the admin reports.
package service

import (
	"fmt"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/ws"
	"github.com/EnmaSantos/office-snack-app/pkg/validator"

	"github.com/shopspring/decimal"
)

// Broadcaster receives events after their transaction commits.
type Broadcaster interface {
	Publish(event ws.Event)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(ws.Event) {}

func orNoop(b Broadcaster) Broadcaster {
	if b == nil {
		return noopBroadcaster{}
	}
	return b
}

func validateInput(input interface{}) error {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}

func requireAdmin(caller model.Identity) error {
	if !caller.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// isCents reports whether d has at most two fractional digits.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

func actorOf(caller model.Identity) *ws.Actor {
	return &ws.Actor{ID: caller.UserID.String(), Name: caller.DisplayName, Email: caller.Email}
}
