package coin

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a coin is not found.
var ErrNotFound = errors.New("coin not found")

// Rarity levels used by the coin catalog. Finer grained than the stamp
// catalog's four levels.
var RarityLevels = []string{"common", "uncommon", "scarce", "rare", "very_rare", "extremely_rare"}

func ValidRarity(r string) bool {
	for _, level := range RarityLevels {
		if r == level {
			return true
		}
	}
	return false
}

// Coin is a catalog record describing a coin type.
type Coin struct {
	ID             int       `json:"id"`
	CatalogNumber  *string   `json:"catalogNumber,omitempty"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Country        string    `json:"country"`
	Category       string    `json:"category"`
	Year           int       `json:"year"`
	Denomination   *string   `json:"denomination,omitempty"`
	Composition    *string   `json:"composition,omitempty"`
	Weight         *float64  `json:"weight,omitempty"`
	Diameter       *float64  `json:"diameter,omitempty"`
	Thickness      *float64  `json:"thickness,omitempty"`
	Edge           *string   `json:"edge,omitempty"`
	Mintage        *int64    `json:"mintage,omitempty"`
	MintMark       *string   `json:"mintMark,omitempty"`
	Designer       *string   `json:"designer,omitempty"`
	Series         *string   `json:"series,omitempty"`
	Rarity         string    `json:"rarity"`
	ObverseImage   *string   `json:"obverseImage,omitempty"`
	ReverseImage   *string   `json:"reverseImage,omitempty"`
	EstimatedValue *float64  `json:"estimatedValue,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Query defines filters and pagination for listing coins.
type Query struct {
	Search   string
	Country  string
	Category string
	Rarity   string
	YearFrom *int
	YearTo   *int
	PriceMin *float64
	PriceMax *float64
	Limit    int
	Offset   int
}
