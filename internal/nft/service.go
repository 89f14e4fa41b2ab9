package nft

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	stamps StampStore
	minter Minter
	repo   Repository
	now    func() time.Time
}

func NewService(stamps StampStore, minter Minter, repo Repository) *Service {
	return &Service{stamps: stamps, minter: minter, repo: repo, now: time.Now}
}

// MintStamp mints a catalog stamp as a token for ownerID and records the
// result. Metadata fields left empty are filled from the stamp.
func (s *Service) MintStamp(ctx context.Context, ownerID int, req MintRequest) (StampNFT, error) {
	st, err := s.stamps.GetByID(ctx, req.StampID)
	if err != nil {
		return StampNFT{}, err
	}

	metadata := req.Metadata
	if metadata.Name == "" {
		metadata.Name = st.Title
	}
	if metadata.Description == "" && st.Description != nil {
		metadata.Description = *st.Description
	}
	if metadata.Image == "" && st.ImageURL != nil {
		metadata.Image = *st.ImageURL
	}

	result, err := s.minter.Mint(ctx, req.RecipientAddress, metadata, req.RoyaltyPercentage)
	if err != nil {
		return StampNFT{}, fmt.Errorf("mint stamp %d: %w", req.StampID, err)
	}

	n := StampNFT{
		TokenID:             result.TokenID,
		ContractAddress:     result.ContractAddress,
		StampID:             req.StampID,
		OwnerID:             ownerID,
		Metadata:            metadata,
		MintedAt:            s.now().UTC(),
		TransactionHash:     result.TransactionHash,
		Royalties:           req.RoyaltyPercentage,
		CreatorAddress:      req.RecipientAddress,
		CurrentOwnerAddress: req.RecipientAddress,
	}
	if err := s.repo.Save(ctx, &n); err != nil {
		return StampNFT{}, err
	}
	return n, nil
}

// ListByOwner returns the tokens minted by a user.
func (s *Service) ListByOwner(ctx context.Context, ownerID int) ([]StampNFT, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
