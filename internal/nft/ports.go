package nft

import (
	"context"

	"collectapi/internal/stamp"
)

// Minter mints tokens on the chain backend. *Client satisfies it.
type Minter interface {
	Mint(ctx context.Context, recipient string, metadata Metadata, royaltyPct float64) (*MintResult, error)
}

// StampStore is the slice of the stamp catalog the mint flow needs.
type StampStore interface {
	GetByID(ctx context.Context, id int) (stamp.Stamp, error)
}

// Repository defines the contract for minted token storage.
type Repository interface {
	Save(ctx context.Context, n *StampNFT) error
	ListByOwner(ctx context.Context, ownerID int) ([]StampNFT, error)
}
