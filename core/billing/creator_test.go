package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/billpay/core/bill"
	"github.com/kilianp07/billpay/core/model"
)

// The three creation styles must agree on every outcome.
func TestCreationStylesAgree(t *testing.T) {
	f := NewDefaultFactory()
	records := []model.BillRecord{
		{AmountAvailable: 25, AmountOwed: 23},
		{AmountAvailable: 22, AmountOwed: 23},
		{AmountAvailable: 0, AmountOwed: 0},
	}
	creators := map[string]Creator{
		bill.CategoryMobile:   MobileCreator{},
		bill.CategoryInternet: InternetCreator{},
	}
	for category, c := range creators {
		for _, rec := range records {
			fromRegistry, err := f.ProcessBill(category, rec)
			assert.NoError(t, err)
			fromCreator := Process(c, rec)

			var generic model.Bill
			if category == bill.CategoryMobile {
				generic = Evaluate(bill.NewMobile(), rec)
			} else {
				generic = Evaluate(bill.NewInternet(), rec)
			}

			want := model.OutcomeOf(fromRegistry)
			assert.Equal(t, want, model.OutcomeOf(fromCreator))
			assert.Equal(t, want, model.OutcomeOf(generic))
		}
	}
}

func TestEvaluate_KeepsConcreteType(t *testing.T) {
	m := Evaluate(bill.NewMobile(), model.BillRecord{AmountAvailable: 3, AmountOwed: 2})
	assert.True(t, m.Evaluated())
	assert.True(t, m.IsPaid())
}

func TestCreatorFunc(t *testing.T) {
	c := CreatorFunc(func() model.Bill { return bill.New("Water") })
	b := Process(c, model.BillRecord{AmountAvailable: 1, AmountOwed: 2})
	assert.Equal(t, "Water", b.Category())
	assert.False(t, b.IsPaid())
}
