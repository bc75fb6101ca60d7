package models

// CallerProfile captures a caller's housing preferences as collected by the
// assistant over the course of a conversation. Numeric-ish fields are kept as
// strings because callers phrase them loosely ("450k", "about 2000 sq ft");
// normalization happens in the matching service and always produces a new
// value rather than mutating the caller's submitted record.
type CallerProfile struct {
	Name         string   `json:"name,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	BuyOrRent    string   `json:"buyOrRent,omitempty"`
	Location     string   `json:"location,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	Sqft         string   `json:"sqft,omitempty"`
	Budget       string   `json:"budget,omitempty"`
	Bedrooms     int      `json:"bedrooms,omitempty"`
	Bathrooms    float64  `json:"bathrooms,omitempty"`
	MustHaves    []string `json:"must_haves,omitempty"`
	GoodToHaves  []string `json:"good_to_haves,omitempty"`
}
