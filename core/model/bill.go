package model

// BillRecord is the input of a payment check. It is passed by value and never
// modified once built.
type BillRecord struct {
	AmountAvailable int `json:"amount_available"` // funds the customer can spend
	AmountOwed      int `json:"amount_owed"`      // debt on the bill
}

// Covers reports whether the available funds cover the debt.
func (r BillRecord) Covers() bool {
	return r.AmountAvailable >= r.AmountOwed
}

// Shortfall returns the missing amount, or 0 when the debt is covered. The
// difference of two ints always fits in a uint64.
func (r BillRecord) Shortfall() uint64 {
	if r.Covers() {
		return 0
	}
	return uint64(r.AmountOwed) - uint64(r.AmountAvailable)
}

// Bill is a payable bill of a fixed category.
type Bill interface {
	// Evaluate sets the paid status from the record. Calling it again with
	// the same record yields the same status.
	Evaluate(rec BillRecord)
	// IsPaid returns the paid status, false before the first Evaluate.
	IsPaid() bool
	// Category returns the label fixed at construction.
	Category() string
}

// Outcome is the structured result of an evaluated bill.
type Outcome struct {
	Category string `json:"category"`
	Paid     bool   `json:"paid"`
}

// OutcomeOf snapshots the state of b.
func OutcomeOf(b Bill) Outcome {
	return Outcome{Category: b.Category(), Paid: b.IsPaid()}
}

// PaymentRequest asks for a bill of Category to be checked against the
// given amounts.
type PaymentRequest struct {
	Category        string `json:"category" validate:"required"`
	AmountAvailable int    `json:"amount_available"`
	AmountOwed      int    `json:"amount_owed"`
}

// Record returns the amounts of the request as a BillRecord.
func (r PaymentRequest) Record() BillRecord {
	return BillRecord{AmountAvailable: r.AmountAvailable, AmountOwed: r.AmountOwed}
}
