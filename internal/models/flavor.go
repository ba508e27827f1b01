package models

// SeasonAll marks a flavor as season-agnostic: it is visible under every
// season filter, and a filter value of SeasonAll disables filtering entirely.
const SeasonAll = "All"

// Flavor is a purchasable catalog record.
type Flavor struct {
	ID     int64
	Name   string
	Price  float64
	Season string
}
