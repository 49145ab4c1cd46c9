package property

import (
	"context"
)

// Repository is the persistence gateway for properties. List must seed the
// default properties when the store is empty, so a first run always yields a
// usable scope.
type Repository interface {
	List(ctx context.Context) ([]*Property, error)
	Create(ctx context.Context, name string) (*Property, error)
	Rename(ctx context.Context, id, name string) error
}
