package billing

import (
	"github.com/kilianp07/billpay/core/bill"
	"github.com/kilianp07/billpay/core/model"
)

// Creator makes bills of a single category.
type Creator interface {
	MakeBill() model.Bill
}

// CreatorFunc adapts a Constructor to Creator.
type CreatorFunc Constructor

func (fn CreatorFunc) MakeBill() model.Bill { return fn() }

// MobileCreator makes mobile bills.
type MobileCreator struct{}

func (MobileCreator) MakeBill() model.Bill { return bill.NewMobile() }

// InternetCreator makes internet bills.
type InternetCreator struct{}

func (InternetCreator) MakeBill() model.Bill { return bill.NewInternet() }

// Process makes a bill with c and evaluates it against rec.
func Process(c Creator, rec model.BillRecord) model.Bill {
	b := c.MakeBill()
	b.Evaluate(rec)
	return b
}

// Evaluate evaluates an already built bill and hands it back with its
// concrete type.
func Evaluate[T model.Bill](b T, rec model.BillRecord) T {
	b.Evaluate(rec)
	return b
}
