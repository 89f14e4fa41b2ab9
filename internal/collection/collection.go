package collection

import (
	"errors"
	"time"

	"collectapi/internal/coin"
)

// ErrNotFound is returned when a collection item does not exist or
// belongs to another user.
var ErrNotFound = errors.New("collection item not found")

// Item is a coin owned by a user, with the joined catalog record
// populated on reads.
type Item struct {
	ID            int        `json:"id"`
	UserID        int        `json:"-"`
	CoinID        int        `json:"coinId"`
	Quantity      int        `json:"quantity"`
	Condition     *string    `json:"condition,omitempty"`
	PurchasePrice *float64   `json:"purchasePrice,omitempty"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Coin          *coin.Coin `json:"coin,omitempty"`
}
