package collection

import (
	"context"
)

// Repository defines the contract for collection storage. Every
// operation is scoped to a single user.
type Repository interface {
	List(ctx context.Context, userID, limit, offset int) ([]Item, int, error)
	Add(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Remove(ctx context.Context, userID, id int) error
}
