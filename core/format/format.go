// Package format renders bill outcomes for humans.
package format

import (
	"fmt"

	"github.com/kilianp07/billpay/core/model"
)

const (
	paidTemplate   = "%s bill is payed!"
	unpaidTemplate = "Not enough money to pay the %s bill!"
)

// Message returns the status line for b.
func Message(b model.Bill) string {
	return OutcomeMessage(model.OutcomeOf(b))
}

// OutcomeMessage returns the status line for an outcome snapshot.
func OutcomeMessage(o model.Outcome) string {
	if o.Paid {
		return fmt.Sprintf(paidTemplate, o.Category)
	}
	return fmt.Sprintf(unpaidTemplate, o.Category)
}
