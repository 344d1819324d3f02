// Package billing creates bills by category and drives their evaluation.
//
// Factory is the registry form of the Factory Method: adding a category means
// registering one constructor, no dispatch code changes. Creator and Evaluate
// provide the per-category creator and generic forms of the same contract.
package billing

import (
	"errors"
	"fmt"

	"github.com/kilianp07/billpay/core/bill"
	"github.com/kilianp07/billpay/core/factory"
	"github.com/kilianp07/billpay/core/model"
)

// ErrUnknownCategory is returned when no bill variant is registered for a
// category selector.
var ErrUnknownCategory = errors.New("unknown bill category")

// Constructor returns a new, unevaluated bill.
type Constructor func() model.Bill

// Factory maps category selectors to bill constructors.
type Factory struct {
	reg *factory.Registry[model.Bill]
}

// NewFactory returns a factory with no categories registered.
func NewFactory() *Factory {
	return &Factory{reg: factory.NewRegistry[model.Bill]()}
}

// NewDefaultFactory returns a factory with the built-in categories.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	for _, name := range builtinNames() {
		_ = f.Register(name, builtins[name])
	}
	return f
}

// Register adds a constructor for category.
func (f *Factory) Register(category string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("constructor nil for %s", category)
	}
	return f.reg.Register(category, func(map[string]any) (model.Bill, error) {
		return ctor(), nil
	})
}

// Create returns a new bill for category.
func (f *Factory) Create(category string) (model.Bill, error) {
	b, err := f.reg.Create(factory.ModuleConfig{Type: category})
	if errors.Is(err, factory.ErrUnknownType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ProcessBill creates a bill for category and evaluates it against rec.
func (f *Factory) ProcessBill(category string, rec model.BillRecord) (model.Bill, error) {
	b, err := f.Create(category)
	if err != nil {
		return nil, err
	}
	b.Evaluate(rec)
	return b, nil
}

// Categories returns the registered categories in sorted order.
func (f *Factory) Categories() []string {
	return f.reg.Names()
}

var builtins = map[string]Constructor{
	bill.CategoryMobile:   func() model.Bill { return bill.NewMobile() },
	bill.CategoryInternet: func() model.Bill { return bill.NewInternet() },
}

func builtinNames() []string {
	return []string{bill.CategoryInternet, bill.CategoryMobile}
}
