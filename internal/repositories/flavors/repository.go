// Package flavors provides persistence and search for the flavor catalog.
package flavors

import (
	"context"

	"github.com/avoskres/parlor/internal/models"
)

// SearchFilter narrows a catalog page.
//
// Query is matched as a case-sensitive substring of the flavor name; an empty
// Query matches everything. Season equal to models.SeasonAll (or empty)
// disables the season clause; any other value also admits flavors tagged
// models.SeasonAll. Limit/Offset select the page window.
type SearchFilter struct {
	Season string
	Query  string
	Limit  int
	Offset int
}

// Repository is the persistence contract for the flavor catalog.
type Repository interface {
	Search(ctx context.Context, filter SearchFilter) ([]models.Flavor, error)
	Create(ctx context.Context, flavor *models.Flavor) error
}
