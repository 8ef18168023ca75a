package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rea/internal/model"
)

var (
	priceRangeRe  = regexp.MustCompile(`(\d{3,5})\s*(?:-|–|to)\s*(\d{3,5})`)
	priceSingleRe = regexp.MustCompile(`\b(\d{3,5})\b`)
	bedroomsRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:bedrooms?|beds?|br)\b`)
)

type typePattern struct {
	re        *regexp.Regexp
	canonical string
}

// Word-boundary patterns for the type vocabulary, optionally pluralized
var propertyTypePatterns = buildTypePatterns()

func buildTypePatterns() []typePattern {
	patterns := make([]typePattern, 0, len(propertyTypeVocab))
	for _, entry := range propertyTypeVocab {
		patterns = append(patterns, typePattern{
			re:        regexp.MustCompile(`\b` + entry.keyword + `s?\b`),
			canonical: entry.canonical,
		})
	}
	return patterns
}

// FallbackExtractor derives search criteria from the latest user message with
// lexical pattern matching. It is used whenever the model-backed extractor is
// unavailable or returns something unusable, and it never fails.
type FallbackExtractor struct{}

// NewFallbackExtractor creates a deterministic pattern-based extractor
func NewFallbackExtractor() *FallbackExtractor {
	return &FallbackExtractor{}
}

// Extract runs pattern extraction over the most recent user turn
func (e *FallbackExtractor) Extract(ctx context.Context, conversation []model.Message) (*model.ExtractionResult, error) {
	return e.ExtractMessage(latestUserMessage(conversation)), nil
}

// ExtractMessage derives criteria from a single message
func (e *FallbackExtractor) ExtractMessage(message string) *model.ExtractionResult {
	text := strings.ToLower(message)
	var f model.FilterCriteria

	// Price: a two-number range beats a single standalone number, which only
	// sets the upper bound.
	if m := priceRangeRe.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		f.PriceMin, f.PriceMax = &lo, &hi
	} else if m := priceSingleRe.FindStringSubmatch(text); m != nil {
		v, _ := strconv.Atoi(m[1])
		f.PriceMax = &v
	}

	if m := bedroomsRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v >= 0 {
			f.BedroomsMin = &v
		}
	}

	for _, entry := range cityVocab {
		if strings.Contains(text, entry.keyword) {
			city := entry.canonical
			f.City = &city
			break
		}
	}

	for _, p := range propertyTypePatterns {
		if p.re.MatchString(text) {
			pt := p.canonical
			f.PropertyType = &pt
			break
		}
	}

	for _, entry := range amenityVocab {
		if strings.Contains(text, entry.keyword) && !containsAmenity(f.Amenities, entry.canonical) {
			f.Amenities = append(f.Amenities, entry.canonical)
		}
	}

	if tt := detectTransaction(text); tt != "" {
		f.TransactionType = &tt
	}

	// Absent means "don't care": the booleans are only ever set to true.
	if strings.Contains(text, "school") {
		yes := true
		f.NearSchools = &yes
	}
	for _, kw := range transitKeywords {
		if strings.Contains(text, kw) {
			yes := true
			f.NearTransit = &yes
			break
		}
	}

	followUp, finalize := buildFollowUp(f)

	return &model.ExtractionResult{
		Filters:  f.Normalized(),
		FollowUp: followUp,
		Finalize: finalize,
	}
}

// buildFollowUp asks for whichever of city, bedrooms and budget is still
// missing. When nothing is missing the criteria are complete enough to search.
func buildFollowUp(f model.FilterCriteria) (string, bool) {
	var missing []string
	if f.City == nil {
		missing = append(missing, "your city")
	}
	if f.BedroomsMin == nil {
		missing = append(missing, "minimum bedrooms")
	}
	if f.PriceMin == nil && f.PriceMax == nil {
		missing = append(missing, "your budget")
	}

	if len(missing) == 0 {
		return "", true
	}
	return fmt.Sprintf("Could you share %s?", joinHuman(missing)), false
}

func detectTransaction(text string) string {
	for _, kw := range rentKeywords {
		if strings.Contains(text, kw) {
			return model.TransactionRent
		}
	}
	for _, kw := range buyKeywords {
		if strings.Contains(text, kw) {
			return model.TransactionBuy
		}
	}
	return ""
}

// latestUserMessage returns the content of the most recent user turn, or an
// empty string when the conversation has none yet.
func latestUserMessage(conversation []model.Message) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == model.RoleUser {
			return conversation[i].Content
		}
	}
	return ""
}

func joinHuman(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func containsAmenity(list []string, name string) bool {
	for _, a := range list {
		if a == name {
			return true
		}
	}
	return false
}
