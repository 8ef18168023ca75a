package model

// Listing represents a single real-estate record in the dataset
type Listing struct {
	ID           int64  `json:"id" db:"id"`
	City         string `json:"city" db:"city"`
	Neighborhood string `json:"neighborhood" db:"neighborhood"`
	Type         string `json:"type" db:"type"`
	ListingType  string `json:"listing_type" db:"listing_type"`
	Price        int    `json:"price" db:"price"`
	Currency     string `json:"currency" db:"currency"`
	Bedrooms     int    `json:"bedrooms" db:"bedrooms"`
	Parking      bool   `json:"parking" db:"parking"`
	Garden       bool   `json:"garden" db:"garden"`
	Pool         bool   `json:"pool" db:"pool"`
	NearSchools  bool   `json:"near_schools" db:"near_schools"`
	NearTransit  bool   `json:"near_transit" db:"near_transit"`
	Description  string `json:"description" db:"description"`
	ImageURL     string `json:"image_url" db:"image_url"`
}

// HasAmenity reports whether the listing carries the named amenity flag
func (l Listing) HasAmenity(name string) bool {
	switch name {
	case AmenityParking:
		return l.Parking
	case AmenityGarden:
		return l.Garden
	case AmenityPool:
		return l.Pool
	}
	return false
}

// ScoredListing is a listing paired with its ranking score
type ScoredListing struct {
	Listing
	Score float64 `json:"score"`
}
