package listingRepo

import (
	"homeshow/models"
)

// ListingSearchCriteria defines the pre-filter applied before similarity
// ranking. Zero values disable the corresponding clause.
type ListingSearchCriteria struct {
	City          string
	PropertyType  string
	MinSquareFeet int
	MinPrice      int
	MaxPrice      int
	MinBedrooms   int
	MinBathrooms  float64
}

// ListingRepository defines methods for listings-index data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its listing_id.
	GetByID(id string) (*models.Listing, error)
	// Search returns listings matching the criteria, embeddings included.
	Search(criteria ListingSearchCriteria) ([]models.Listing, error)
	// Upsert inserts or replaces a listing document.
	Upsert(listing models.Listing) error
}
