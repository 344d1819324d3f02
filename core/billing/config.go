package billing

import "fmt"

// Config selects which built-in categories a factory accepts. An empty list
// enables all of them.
type Config struct {
	Categories []string `json:"categories"`
}

// Validate checks that every configured category is a built-in one.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Categories))
	for _, name := range c.Categories {
		if _, ok := builtins[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("category %s listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// NewFactoryFromConfig returns a factory restricted to cfg.Categories.
func NewFactoryFromConfig(cfg Config) (*Factory, error) {
	if len(cfg.Categories) == 0 {
		return NewDefaultFactory(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := NewFactory()
	for _, name := range cfg.Categories {
		if err := f.Register(name, builtins[name]); err != nil {
			return nil, err
		}
	}
	return f, nil
}
