package nft

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a minted token record does not exist.
var ErrNotFound = errors.New("nft not found")

// Metadata is the on-chain token metadata.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	ExternalURL string      `json:"external_url,omitempty"`
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// StampNFT is a minted token backed by a stamp from the catalog.
type StampNFT struct {
	ID                  int       `json:"id"`
	TokenID             string    `json:"tokenId"`
	ContractAddress     string    `json:"contractAddress"`
	StampID             int       `json:"stampId"`
	OwnerID             int       `json:"ownerId"`
	Metadata            Metadata  `json:"metadata"`
	MintedAt            time.Time `json:"mintedAt"`
	TransactionHash     string    `json:"transactionHash"`
	Royalties           float64   `json:"royalties"`
	CreatorAddress      string    `json:"creatorAddress"`
	CurrentOwnerAddress string    `json:"currentOwnerAddress"`
}

// MintRequest is what a user submits to mint a stamp as a token.
type MintRequest struct {
	StampID           int      `json:"stampId" validate:"required,gt=0"`
	RecipientAddress  string   `json:"recipientAddress" validate:"required"`
	RoyaltyPercentage float64  `json:"royaltyPercentage" validate:"gte=0,lte=100"`
	Metadata          Metadata `json:"metadata"`
}
