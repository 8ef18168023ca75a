package model

import "strings"

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn, owned by the caller
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Allowed enum values for FilterCriteria fields
const (
	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyCondo     = "condo"

	TransactionRent = "rent"
	TransactionBuy  = "buy"

	AmenityParking = "parking"
	AmenityGarden  = "garden"
	AmenityPool    = "pool"
)

// FilterCriteria is the normalized search specification extracted from a
// conversation. Every field is independently optional; an all-absent value
// matches the entire dataset.
type FilterCriteria struct {
	City            *string  `json:"city"`
	Neighborhood    *string  `json:"neighborhood"`
	PriceMin        *int     `json:"price_min"`
	PriceMax        *int     `json:"price_max"`
	PropertyType    *string  `json:"property_type"`
	TransactionType *string  `json:"transaction_type"`
	BedroomsMin     *int     `json:"bedrooms_min"`
	Amenities       []string `json:"amenities"`
	NearSchools     *bool    `json:"near_schools"`
	NearTransit     *bool    `json:"near_transit"`
}

// ExtractionResult is the outcome of one extraction pass over a conversation
type ExtractionResult struct {
	Filters  FilterCriteria `json:"filters"`
	FollowUp string         `json:"follow_up"`
	Finalize bool           `json:"finalize"`
}

// Normalized returns a cleaned copy of the criteria: city is trimmed and
// title-cased, neighborhood trimmed, property and transaction types are
// lower-cased with unrecognized values discarded, and amenities are restricted
// to the allowed set. Invalid values never produce an error.
func (f FilterCriteria) Normalized() FilterCriteria {
	out := f

	out.City = normalizeText(f.City, true)
	out.Neighborhood = normalizeText(f.Neighborhood, false)
	out.PropertyType = normalizeEnum(f.PropertyType, PropertyApartment, PropertyHouse, PropertyCondo)
	out.TransactionType = normalizeEnum(f.TransactionType, TransactionRent, TransactionBuy)

	if len(f.Amenities) > 0 {
		kept := make([]string, 0, len(f.Amenities))
		for _, a := range f.Amenities {
			a = strings.ToLower(strings.TrimSpace(a))
			switch a {
			case AmenityParking, AmenityGarden, AmenityPool:
				if !containsString(kept, a) {
					kept = append(kept, a)
				}
			}
		}
		out.Amenities = kept
	}

	return out
}

// normalizeText trims a free-text field, dropping empty values and the literal
// "Null" some models emit instead of JSON null.
func normalizeText(s *string, title bool) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "none") {
		return nil
	}
	if title {
		v = titleCase(v)
	}
	return &v
}

// normalizeEnum lower-cases an enum field and discards values outside the
// allowed set.
func normalizeEnum(s *string, allowed ...string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	for _, a := range allowed {
		if v == a {
			return &v
		}
	}
	return nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
