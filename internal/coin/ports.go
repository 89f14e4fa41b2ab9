package coin

import (
	"context"
)

// Repository defines the contract for coin catalog storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Coin, int, error)
	GetByID(ctx context.Context, id int) (Coin, error)
	Create(ctx context.Context, c *Coin) error
	Update(ctx context.Context, c *Coin) error
	Delete(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]string, error)
}
