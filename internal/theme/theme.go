package theme

import (
	"time"
)

// Colors is a theme color palette.
type Colors struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Info          string `json:"info"`
}

// Theme is a generated display theme for the collection UI.
type Theme struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Country       string    `json:"country,omitempty"`
	Colors        Colors    `json:"colors"`
	Tags          []string  `json:"tags"`
	IsAIGenerated bool      `json:"isAIGenerated"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Prompt describes what kind of theme the user wants.
type Prompt struct {
	Category       string   `json:"category" validate:"required"`
	Country        string   `json:"country"`
	Mood           string   `json:"mood" validate:"required"`
	Colors         []string `json:"colors"`
	Inspiration    string   `json:"inspiration"`
	TargetAudience string   `json:"targetAudience"`
}

// Country flag palettes used when the model gives us nothing usable.
var countryColors = map[string]Colors{
	"south-africa":   {Primary: "#007749", Secondary: "#ffb612", Accent: "#de3831"},
	"united-states":  {Primary: "#002868", Secondary: "#bf0a30", Accent: "#ffffff"},
	"united-kingdom": {Primary: "#012169", Secondary: "#c8102e", Accent: "#ffffff"},
	"germany":        {Primary: "#000000", Secondary: "#dd0000", Accent: "#ffce00"},
	"france":         {Primary: "#0055a4", Secondary: "#ffffff", Accent: "#ef4135"},
	"japan":          {Primary: "#bc002d", Secondary: "#ffffff", Accent: "#000000"},
	"china":          {Primary: "#de2910", Secondary: "#ffde00", Accent: "#000000"},
}

var defaultAccents = Colors{Primary: "#3730a3", Secondary: "#7c3aed", Accent: "#06b6d4"}

// fallbackColors fills a full palette from the country's flag colors, or
// neutral defaults for unknown countries.
func fallbackColors(country string) Colors {
	c, ok := countryColors[country]
	if !ok {
		c = defaultAccents
	}
	c.Background = "#ffffff"
	c.Surface = "#f8fafc"
	c.Text = "#1f2937"
	c.TextSecondary = "#6b7280"
	c.Border = "#e5e7eb"
	c.Success = "#10b981"
	c.Warning = "#f59e0b"
	c.Error = "#ef4444"
	c.Info = "#3b82f6"
	return c
}
