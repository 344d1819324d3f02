// Package bill holds the concrete bill variants. All variants share the same
// payment rule and differ only by their category label.
package bill

import "github.com/kilianp07/billpay/core/model"

const (
	CategoryMobile   = "Mobile"
	CategoryInternet = "Internet"
)

// payable carries the paid state shared by every variant. It is embedded by
// value so a zero bill is usable and the label stays owned by the variant.
type payable struct {
	paid      bool
	evaluated bool
}

func (p *payable) Evaluate(rec model.BillRecord) {
	p.paid = rec.Covers()
	p.evaluated = true
}

func (p *payable) IsPaid() bool { return p.paid }

// Evaluated reports whether Evaluate has run at least once.
func (p *payable) Evaluated() bool { return p.evaluated }

// MobileBill is a mobile phone bill.
type MobileBill struct{ payable }

// NewMobile returns an unevaluated mobile bill.
func NewMobile() *MobileBill { return &MobileBill{} }

func (*MobileBill) Category() string { return CategoryMobile }

// InternetBill is a home internet bill.
type InternetBill struct{ payable }

// NewInternet returns an unevaluated internet bill.
func NewInternet() *InternetBill { return &InternetBill{} }

func (*InternetBill) Category() string { return CategoryInternet }

// Custom is a bill whose label is chosen at construction, for categories
// registered at runtime.
type Custom struct {
	payable
	category string
}

// New returns an unevaluated bill labelled with category.
func New(category string) *Custom { return &Custom{category: category} }

func (c *Custom) Category() string { return c.category }

var (
	_ model.Bill = (*MobileBill)(nil)
	_ model.Bill = (*InternetBill)(nil)
	_ model.Bill = (*Custom)(nil)
)
