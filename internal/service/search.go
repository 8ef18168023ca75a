package service

import (
	"context"
	"log"
	"time"

	"rea/internal/model"
)

// SearchLogger records completed searches, when a backing store is configured
type SearchLogger interface {
	LogSearch(ctx context.Context, filters model.FilterCriteria, total int, tookMS int64) error
}

// SearchService runs the extract-then-rank pipeline over the in-memory dataset
type SearchService struct {
	listings  []model.Listing
	extractor *CriteriaExtractor
	logger    SearchLogger
}

// NewSearchService creates a search service over a read-only dataset. The
// logger is optional and may be nil.
func NewSearchService(listings []model.Listing, extractor *CriteriaExtractor, logger SearchLogger) *SearchService {
	return &SearchService{
		listings:  listings,
		extractor: extractor,
		logger:    logger,
	}
}

// Chat processes one conversation turn: extract criteria, filter and rank.
// It never fails; extraction degrades to the fallback strategy on its own.
func (s *SearchService) Chat(ctx context.Context, messages []model.Message, limit int) *model.ChatResponse {
	startTime := time.Now()

	extraction := s.extractor.Extract(ctx, messages)
	results := FilterAndRank(s.listings, extraction.Filters)
	total := len(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	took := time.Since(startTime).Milliseconds()
	s.logSearch(extraction.Filters, total, took)

	return &model.ChatResponse{
		FollowUp: extraction.FollowUp,
		Finalize: extraction.Finalize,
		Filters:  extraction.Filters,
		Results:  results,
		Total:    total,
		Took:     took,
	}
}

// Search filters and ranks against explicit criteria, bypassing extraction
func (s *SearchService) Search(ctx context.Context, filters model.FilterCriteria, limit int) *model.SearchResponse {
	startTime := time.Now()

	results := FilterAndRank(s.listings, filters)
	total := len(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	took := time.Since(startTime).Milliseconds()
	s.logSearch(filters, total, took)

	return &model.SearchResponse{
		Results: results,
		Total:   total,
		Took:    took,
	}
}

// GetListing returns the listing with the given ID, or nil when unknown
func (s *SearchService) GetListing(id int64) *model.Listing {
	for i := range s.listings {
		if s.listings[i].ID == id {
			return &s.listings[i]
		}
	}
	return nil
}

// logSearch records the search without blocking the request
func (s *SearchService) logSearch(filters model.FilterCriteria, total int, took int64) {
	if s.logger == nil {
		return
	}
	go func() {
		if err := s.logger.LogSearch(context.Background(), filters, total, took); err != nil {
			log.Printf("Warning: failed to log search: %v", err)
		}
	}()
}
