package marketplace

import (
	"context"
)

// Repository defines the contract for marketplace listing storage.
type Repository interface {
	Search(ctx context.Context, q Query) ([]Listing, int, error)
	GetByID(ctx context.Context, id int) (Listing, error)
	Create(ctx context.Context, l *Listing) error
	UpdateStatus(ctx context.Context, id, sellerID int, status string) error
}
