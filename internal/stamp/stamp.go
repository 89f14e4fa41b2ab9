package stamp

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a stamp is not found.
var ErrNotFound = errors.New("stamp not found")

// Rarity levels used by the stamp catalog.
var RarityLevels = []string{"common", "uncommon", "rare", "very_rare"}

// ValidRarity reports whether r is a known rarity level.
func ValidRarity(r string) bool {
	for _, level := range RarityLevels {
		if r == level {
			return true
		}
	}
	return false
}

// Stamp is a catalog record describing a collectible stamp type, not an
// individual owned copy.
type Stamp struct {
	ID          int        `json:"id"`
	SACCNumber  *string    `json:"saccNumber,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IssueDate   *time.Time `json:"issueDate,omitempty"`
	FaceValue   *float64   `json:"faceValue,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	SeriesName  *string    `json:"seriesName,omitempty"`
	Designer    *string    `json:"designer,omitempty"`
	Printer     *string    `json:"printer,omitempty"`
	Perforation *string    `json:"perforation,omitempty"`
	Watermark   *string    `json:"watermark,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	RarityLevel string     `json:"rarityLevel"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Category groups stamps in the catalog.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Query defines filters and pagination for listing stamps. All filter
// fields are optional; an empty query matches the whole catalog.
type Query struct {
	Search   string
	Category *int
	Rarity   string
	YearFrom *int
	YearTo   *int
	Limit    int
	Offset   int
}
