package country

import (
	"time"
)

// Info describes a country for the collecting UI.
type Info struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName"`
	Flag       string   `json:"flag"`
	Currency   string   `json:"currency"`
	Languages  []string `json:"languages"`
	Timezone   string   `json:"timezone"`
	Continent  string   `json:"continent"`
	Region     string   `json:"region"`
}

// DetectionResult is a country guess with how it was made and how much
// to trust it.
type DetectionResult struct {
	Country    Info      `json:"country"`
	Confidence float64   `json:"confidence"`
	Method     string    `json:"method"`
	Timestamp  time.Time `json:"timestamp"`
}

var countries = map[string]Info{
	"ZA": {
		Code: "ZA", Name: "South Africa", NativeName: "South Africa",
		Flag: "\U0001F1FF\U0001F1E6", Currency: "ZAR",
		Languages: []string{"en", "af", "zu", "xh"},
		Timezone:  "Africa/Johannesburg",
		Continent: "Africa", Region: "Southern Africa",
	},
	"US": {
		Code: "US", Name: "United States", NativeName: "United States",
		Flag: "\U0001F1FA\U0001F1F8", Currency: "USD",
		Languages: []string{"en"},
		Timezone:  "America/New_York",
		Continent: "North America", Region: "Northern America",
	},
	"GB": {
		Code: "GB", Name: "United Kingdom", NativeName: "United Kingdom",
		Flag: "\U0001F1EC\U0001F1E7", Currency: "GBP",
		Languages: []string{"en"},
		Timezone:  "Europe/London",
		Continent: "Europe", Region: "Northern Europe",
	},
}

// InfoByCode returns country details, falling back to the US entry for
// codes we have no record of.
func InfoByCode(code string) Info {
	if info, ok := countries[code]; ok {
		return info
	}
	return countries["US"]
}

// Known reports whether we carry details for the code.
func Known(code string) bool {
	_, ok := countries[code]
	return ok
}
