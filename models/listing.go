package models

// Listing is one property in the listings index.
type Listing struct {
	ListingID    string  `bson:"listing_id" json:"listing_id"`
	Address      string  `bson:"address" json:"address"`
	Neighborhood string  `bson:"neighborhood" json:"neighborhood"`
	City         string  `bson:"city" json:"city"`
	State        string  `bson:"state" json:"state"`
	ZipCode      string  `bson:"zip_code" json:"zip_code"`
	Price        int     `bson:"price" json:"price"`
	Bedrooms     int     `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    float64 `bson:"bathrooms" json:"bathrooms"`
	SquareFeet   int     `bson:"square_feet" json:"square_feet"`
	LotSize      float64 `bson:"lot_size" json:"lot_size"`
	YearBuilt    int     `bson:"year_built" json:"year_built"`
	PropertyType string  `bson:"property_type" json:"property_type"`
	MLSStatus    string  `bson:"mls_status" json:"mls_status"`
	DaysOnMarket int     `bson:"days_on_market" json:"days_on_market"`
	Latitude     float64 `bson:"latitude" json:"latitude"`
	Longitude    float64 `bson:"longitude" json:"longitude"`
	Description  string  `bson:"description" json:"description"`

	// FullText is the generated document text the embedding was computed from.
	FullText  string    `bson:"full_text" json:"full_text,omitempty"`
	Embedding []float32 `bson:"embedding" json:"-"`
}
