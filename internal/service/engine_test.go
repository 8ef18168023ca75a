package service

import (
	"testing"

	"rea/internal/model"
)

func testListings() []model.Listing {
	return []model.Listing{
		{ID: 1, City: "Tbilisi", Neighborhood: "Vake", Type: "apartment", ListingType: "rent", Price: 950, Bedrooms: 2, Parking: true, NearSchools: true, NearTransit: true},
		{ID: 2, City: "Tbilisi", Neighborhood: "Saburtalo", Type: "apartment", ListingType: "rent", Price: 700, Bedrooms: 1, NearTransit: true},
		{ID: 3, City: "Tbilisi", Neighborhood: "Vera", Type: "condo", ListingType: "rent", Price: 1200, Bedrooms: 3, Parking: true, Pool: true, NearSchools: true, NearTransit: true},
		{ID: 4, City: "Batumi", Neighborhood: "Boulevard", Type: "apartment", ListingType: "rent", Price: 850, Bedrooms: 2, Pool: true, NearTransit: true},
		{ID: 5, City: "Batumi", Neighborhood: "Gonio", Type: "house", ListingType: "buy", Price: 1100, Bedrooms: 4, Parking: true, Garden: true},
	}
}

func TestFilterAndRank_EmptyCriteria(t *testing.T) {
	listings := testListings()
	results := FilterAndRank(listings, model.FilterCriteria{})

	if len(results) != len(listings) {
		t.Fatalf("Expected full dataset, got %d of %d", len(results), len(listings))
	}
	for _, r := range results {
		if r.Score != 0 {
			t.Errorf("Expected zero score for listing %d, got %f", r.ID, r.Score)
		}
	}
	// With all scores tied, ordering is price ascending
	for i := 1; i < len(results); i++ {
		if results[i-1].Price > results[i].Price {
			t.Errorf("Results not in price ascending order at index %d: %d > %d",
				i, results[i-1].Price, results[i].Price)
		}
	}
}

func TestFilterAndRank_PriceMax(t *testing.T) {
	listings := []model.Listing{
		{ID: 1, Price: 900, Bedrooms: 2},
		{ID: 2, Price: 1000, Bedrooms: 2},
		{ID: 3, Price: 1100, Bedrooms: 2},
	}
	priceMax := 1000

	results := FilterAndRank(listings, model.FilterCriteria{PriceMax: &priceMax})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Price > priceMax {
			t.Errorf("Listing %d exceeds price_max: %d", r.ID, r.Price)
		}
	}
	// The 1000 listing sits exactly on the target, so it outranks the 900 one
	if results[0].ID != 2 || results[1].ID != 1 {
		t.Errorf("Expected order [2 1], got [%d %d]", results[0].ID, results[1].ID)
	}
}

func TestFilterAndRank_ConjunctivePredicates(t *testing.T) {
	city := "Tbilisi"
	propertyType := "apartment"
	transactionType := "rent"
	bedroomsMin := 2
	priceMin := 800
	priceMax := 1000
	yes := true

	criteria := model.FilterCriteria{
		City:            &city,
		PropertyType:    &propertyType,
		TransactionType: &transactionType,
		BedroomsMin:     &bedroomsMin,
		PriceMin:        &priceMin,
		PriceMax:        &priceMax,
		Amenities:       []string{"parking"},
		NearSchools:     &yes,
		NearTransit:     &yes,
	}

	results := FilterAndRank(testListings(), criteria)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.ID != 1 {
		t.Errorf("Expected listing 1, got %d", r.ID)
	}
	if r.City != city || r.Type != propertyType || r.ListingType != transactionType ||
		r.Bedrooms < bedroomsMin || r.Price < priceMin || r.Price > priceMax ||
		!r.Parking || !r.NearSchools || !r.NearTransit {
		t.Errorf("Result violates a present predicate: %+v", r)
	}
}

func TestFilterAndRank_AmenitiesConjunction(t *testing.T) {
	// Parking AND pool: only listing 3 has both
	results := FilterAndRank(testListings(), model.FilterCriteria{
		Amenities: []string{"parking", "pool"},
	})

	if len(results) != 1 || results[0].ID != 3 {
		t.Fatalf("Expected only listing 3, got %v", resultIDs(results))
	}
}

func TestFilterAndRank_AsymmetricBooleans(t *testing.T) {
	no := false
	// An explicit false imposes no constraint, same as absent
	results := FilterAndRank(testListings(), model.FilterCriteria{
		NearSchools: &no,
		NearTransit: &no,
	})

	if len(results) != len(testListings()) {
		t.Errorf("Explicit false should not filter, got %d results", len(results))
	}

	yes := true
	results = FilterAndRank(testListings(), model.FilterCriteria{NearSchools: &yes})
	for _, r := range results {
		if !r.NearSchools {
			t.Errorf("Listing %d does not satisfy near_schools", r.ID)
		}
	}
}

func TestFilterAndRank_Idempotent(t *testing.T) {
	priceMax := 1000
	criteria := model.FilterCriteria{PriceMax: &priceMax}

	first := FilterAndRank(testListings(), criteria)

	again := make([]model.Listing, len(first))
	for i, r := range first {
		again[i] = r.Listing
	}
	second := FilterAndRank(again, criteria)

	if len(first) != len(second) {
		t.Fatalf("Filtering is not idempotent: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Score != second[i].Score {
			t.Errorf("Mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFilterAndRank_BedroomSurplusBonus(t *testing.T) {
	listings := []model.Listing{
		{ID: 1, Price: 1000, Bedrooms: 2},
		{ID: 2, Price: 1000, Bedrooms: 4},
	}
	bedroomsMin := 2
	priceMax := 1000

	results := FilterAndRank(listings, model.FilterCriteria{
		BedroomsMin: &bedroomsMin,
		PriceMax:    &priceMax,
	})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ID != 2 {
		t.Errorf("Expected the 4-bedroom listing first, got %d", results[0].ID)
	}
	if got, want := results[0].Score, 0.4; got != want {
		t.Errorf("Expected surplus bonus %f, got %f", want, got)
	}
	if results[1].Score != 0 {
		t.Errorf("Expected zero score for exact-minimum listing, got %f", results[1].Score)
	}
}

func TestFilterAndRank_PriceTargetPriority(t *testing.T) {
	listings := []model.Listing{
		{ID: 1, Price: 800, Bedrooms: 2},
		{ID: 2, Price: 1200, Bedrooms: 2},
	}
	priceMin := 800
	priceMax := 1200

	// price_max is the proximity target when both bounds are present
	results := FilterAndRank(listings, model.FilterCriteria{
		PriceMin: &priceMin,
		PriceMax: &priceMax,
	})

	if results[0].ID != 2 {
		t.Errorf("Expected the listing at price_max to rank first, got %d", results[0].ID)
	}
}

func TestFilterAndRank_StableTieBreak(t *testing.T) {
	listings := []model.Listing{
		{ID: 10, Price: 900, Bedrooms: 2},
		{ID: 11, Price: 900, Bedrooms: 2},
		{ID: 12, Price: 900, Bedrooms: 2},
	}

	results := FilterAndRank(listings, model.FilterCriteria{})

	want := []int64{10, 11, 12}
	for i, id := range want {
		if results[i].ID != id {
			t.Fatalf("Ties did not retain dataset order: got %v", resultIDs(results))
		}
	}
}

func TestFilterAndRank_CityCaseInsensitive(t *testing.T) {
	city := "tbilisi"
	results := FilterAndRank(testListings(), model.FilterCriteria{City: &city})

	if len(results) != 3 {
		t.Fatalf("Expected 3 Tbilisi listings, got %d", len(results))
	}
}

func TestFilterAndRank_EmptyResult(t *testing.T) {
	city := "Paris"
	results := FilterAndRank(testListings(), model.FilterCriteria{City: &city})

	if results == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Fatalf("Expected no results, got %d", len(results))
	}
}

func resultIDs(results []model.ScoredListing) []int64 {
	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}
