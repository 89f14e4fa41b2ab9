package marketplace

import (
	"errors"
	"time"

	"collectapi/internal/coin"
)

var (
	// ErrNotFound is returned when a listing does not exist.
	ErrNotFound = errors.New("listing not found")
	// ErrForbidden is returned when a user tries to change a listing
	// they do not own.
	ErrForbidden = errors.New("listing belongs to another seller")
)

// Listing statuses. Only active listings show up in public searches.
const (
	StatusActive    = "active"
	StatusSold      = "sold"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusSold || s == StatusCancelled
}

// Listing is a coin offered for sale by a user. The joined coin record
// is populated on reads.
type Listing struct {
	ID          int        `json:"id"`
	CoinID      int        `json:"coinId"`
	SellerID    int        `json:"sellerId"`
	SellerName  string     `json:"sellerName,omitempty"`
	Condition   *string    `json:"condition,omitempty"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Currency    string     `json:"currency"`
	Description *string    `json:"description,omitempty"`
	Images      []string   `json:"images"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Coin        *coin.Coin `json:"coin,omitempty"`
}

// Query defines filters and pagination for searching listings. Results
// are always restricted to active listings.
type Query struct {
	Search    string
	Country   string
	Category  string
	Rarity    string
	Condition string
	PriceMin  *float64
	PriceMax  *float64
	Limit     int
	Offset    int
}
