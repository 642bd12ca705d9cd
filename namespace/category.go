// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

// Category is one of the documented url-monitor key namespaces.
type Category string

const (
	// Session holds user sessions.
	Session Category = "session"
	// Cache holds general purpose cached values.
	Cache Category = "cache"
	// AlertState holds the last known alert state of a monitor.
	AlertState Category = "alert-state"
	// Schedule holds scheduler state. It never expires.
	Schedule Category = "schedule"
	// Tenant holds tenant specific cached values.
	Tenant Category = "tenant"
)

var categories = []Category{Session, Cache, AlertState, Schedule, Tenant}

// Categories returns all known categories in declaration order.
func Categories() []Category {
	cs := make([]Category, len(categories))
	copy(cs, categories)
	return cs
}

// ToCategory converts the wire literal to a Category.
func ToCategory(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate returns ErrInvalidCategory for unknown categories.
func (c Category) Validate() error {
	for _, known := range categories {
		if c == known {
			return nil
		}
	}
	return ErrInvalidCategory
}

func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ToCategory(string(text))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}
