package service

import "rea/internal/model"

// vocabEntry maps a keyword the user might type to its canonical form
type vocabEntry struct {
	keyword   string
	canonical string
}

// cityVocab lists known cities in lookup order. Matching is case-insensitive
// substring; the first hit wins.
var cityVocab = []vocabEntry{
	{"tbilisi", "Tbilisi"},
	{"batumi", "Batumi"},
	{"kutaisi", "Kutaisi"},
	{"rustavi", "Rustavi"},
	{"gori", "Gori"},
}

// propertyTypeVocab maps type keywords, including synonyms, to the canonical
// enum values. Matched on word boundaries, optionally pluralized.
var propertyTypeVocab = []vocabEntry{
	{"apartment", model.PropertyApartment},
	{"flat", model.PropertyApartment},
	{"house", model.PropertyHouse},
	{"home", model.PropertyHouse},
	{"condo", model.PropertyCondo},
	{"condominium", model.PropertyCondo},
}

// amenityVocab maps amenity keywords, including synonyms, to the canonical
// amenity names. Matching is substring.
var amenityVocab = []vocabEntry{
	{"parking", model.AmenityParking},
	{"garage", model.AmenityParking},
	{"garden", model.AmenityGarden},
	{"yard", model.AmenityGarden},
	{"pool", model.AmenityPool},
	{"swimming", model.AmenityPool},
}

// transitKeywords set near_transit when any of them appears
var transitKeywords = []string{"metro", "bus", "subway"}

// rent/buy wording for transaction type detection
var rentKeywords = []string{"rent", "lease", "monthly"}
var buyKeywords = []string{"buy", "purchase", "for sale", "mortgage"}
