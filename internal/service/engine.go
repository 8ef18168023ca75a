package service

import (
	"math"
	"sort"
	"strings"

	"rea/internal/model"
)

// Scoring constants for the linear ranking heuristic
const (
	bedroomSurplusBonus = 0.2
	priceProximityScale = 1000.0
)

// FilterAndRank narrows the dataset with the present criteria fields and
// returns the survivors ranked by the linear scoring heuristic. Pure function:
// the dataset is never mutated. Absent fields impose no constraint, so empty
// criteria return the whole dataset ordered by price ascending.
func FilterAndRank(listings []model.Listing, criteria model.FilterCriteria) []model.ScoredListing {
	c := criteria.Normalized()

	matched := make([]model.ScoredListing, 0, len(listings))
	for _, l := range listings {
		if matches(l, c) {
			matched = append(matched, model.ScoredListing{Listing: l})
		}
	}
	if len(matched) == 0 {
		return matched
	}

	for i := range matched {
		matched[i].Score = score(matched[i].Listing, c)
	}

	// Stable sort: ties beyond score and price keep dataset order
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].Price < matched[j].Price
	})

	return matched
}

// matches applies the predicate chain in its fixed order
func matches(l model.Listing, c model.FilterCriteria) bool {
	if c.City != nil && !strings.EqualFold(l.City, *c.City) {
		return false
	}
	if c.Neighborhood != nil && !strings.EqualFold(l.Neighborhood, *c.Neighborhood) {
		return false
	}
	if c.PropertyType != nil && l.Type != *c.PropertyType {
		return false
	}
	if c.TransactionType != nil && l.ListingType != *c.TransactionType {
		return false
	}
	if c.BedroomsMin != nil && l.Bedrooms < *c.BedroomsMin {
		return false
	}
	if c.PriceMin != nil && l.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && l.Price > *c.PriceMax {
		return false
	}
	for _, a := range c.Amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	// Asymmetric booleans: only an explicit true filters
	if c.NearSchools != nil && *c.NearSchools && !l.NearSchools {
		return false
	}
	if c.NearTransit != nil && *c.NearTransit && !l.NearTransit {
		return false
	}
	return true
}

// score computes the linear ranking heuristic: a bonus for bedrooms beyond the
// requested minimum and a penalty for distance from the price target, where
// price_max takes priority over price_min as the target.
func score(l model.Listing, c model.FilterCriteria) float64 {
	s := 0.0

	if c.BedroomsMin != nil {
		if surplus := l.Bedrooms - *c.BedroomsMin; surplus > 0 {
			s += float64(surplus) * bedroomSurplusBonus
		}
	}

	target := c.PriceMax
	if target == nil {
		target = c.PriceMin
	}
	if target != nil {
		s -= math.Abs(float64(l.Price-*target)) / priceProximityScale
	}

	return s
}
