package stamp

import (
	"context"
)

// Repository defines the contract for stamp catalog storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Stamp, int, error)
	GetByID(ctx context.Context, id int) (Stamp, error)
	Create(ctx context.Context, s *Stamp) error
	Update(ctx context.Context, s *Stamp) error
	Delete(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]Category, error)
}
