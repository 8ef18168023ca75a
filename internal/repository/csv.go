package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rea/internal/model"
)

// Required dataset columns. listing_type is optional for datasets produced
// before transaction types were tracked.
var requiredColumns = []string{
	"city", "neighborhood", "type", "price", "currency", "bedrooms",
	"parking", "garden", "pool", "near_schools", "near_transit",
	"description", "image_url",
}

// LoadCSV reads the full listing dataset from a CSV file. Columns are matched
// by header name, so their order does not matter.
func LoadCSV(path string) ([]model.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	listings := make([]model.Listing, 0, len(rows))
	for i, row := range rows {
		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		price, err := strconv.Atoi(field("price"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+1, field("price"))
		}
		bedrooms, err := strconv.Atoi(field("bedrooms"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid bedrooms %q", i+1, field("bedrooms"))
		}

		listings = append(listings, model.Listing{
			ID:           int64(i + 1),
			City:         field("city"),
			Neighborhood: field("neighborhood"),
			Type:         strings.ToLower(field("type")),
			ListingType:  strings.ToLower(field("listing_type")),
			Price:        price,
			Currency:     field("currency"),
			Bedrooms:     bedrooms,
			Parking:      parseBool(field("parking")),
			Garden:       parseBool(field("garden")),
			Pool:         parseBool(field("pool")),
			NearSchools:  parseBool(field("near_schools")),
			NearTransit:  parseBool(field("near_transit")),
			Description:  field("description"),
			ImageURL:     field("image_url"),
		})
	}

	return listings, nil
}

// parseBool accepts the spellings CSV exports actually use
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "t":
		return true
	}
	return false
}
