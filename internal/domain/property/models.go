package property

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// Property is a named scope for transactions and aggregations. Properties
// are created explicitly or seeded on first run; there is no delete path.
type Property struct {
	ID   string `json:"id" firestore:"-"`
	Name string `json:"name" firestore:"name"`
}

// DefaultNames are seeded by the gateway when the store holds no properties.
var DefaultNames = []string{"Apartamento Centro", "Casa de Praia"}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > 128 {
		return fmt.Errorf("%w: name must be 128 characters or less", ErrInvalidInput)
	}
	return nil
}
