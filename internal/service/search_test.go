package service

import (
	"context"
	"sync"
	"testing"

	"rea/internal/model"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries int
	done    chan struct{}
}

func (l *recordingLogger) LogSearch(ctx context.Context, filters model.FilterCriteria, total int, tookMS int64) error {
	l.mu.Lock()
	l.entries++
	l.mu.Unlock()
	l.done <- struct{}{}
	return nil
}

func TestSearchService_Chat(t *testing.T) {
	svc := NewSearchService(testListings(), NewCriteriaExtractor(nil), nil)

	resp := svc.Chat(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "2 bedroom apartment in Tbilisi, budget 800-1200"},
	}, 10)

	if !resp.Finalize {
		t.Error("Expected finalize=true for a complete query")
	}
	if resp.FollowUp != "" {
		t.Errorf("Expected empty follow_up, got %q", resp.FollowUp)
	}
	if resp.Total != 1 {
		t.Fatalf("Expected 1 match, got %d", resp.Total)
	}
	if resp.Results[0].ID != 1 {
		t.Errorf("Expected listing 1, got %d", resp.Results[0].ID)
	}
	if resp.Filters.City == nil || *resp.Filters.City != "Tbilisi" {
		t.Errorf("Expected extracted city in response, got %v", resp.Filters.City)
	}
}

func TestSearchService_ChatIncomplete(t *testing.T) {
	svc := NewSearchService(testListings(), NewCriteriaExtractor(nil), nil)

	resp := svc.Chat(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "something up to 1200"},
	}, 10)

	if resp.Finalize {
		t.Error("Expected finalize=false")
	}
	if resp.FollowUp == "" {
		t.Error("Expected a follow-up for the missing essentials")
	}
}

func TestSearchService_SearchLimit(t *testing.T) {
	svc := NewSearchService(testListings(), NewCriteriaExtractor(nil), nil)

	resp := svc.Search(context.Background(), model.FilterCriteria{}, 2)

	if resp.Total != len(testListings()) {
		t.Errorf("Expected total %d, got %d", len(testListings()), resp.Total)
	}
	if len(resp.Results) != 2 {
		t.Errorf("Expected 2 results after capping, got %d", len(resp.Results))
	}
}

func TestSearchService_LogsSearches(t *testing.T) {
	logger := &recordingLogger{done: make(chan struct{}, 1)}
	svc := NewSearchService(testListings(), NewCriteriaExtractor(nil), logger)

	svc.Search(context.Background(), model.FilterCriteria{}, 10)
	<-logger.done

	logger.mu.Lock()
	defer logger.mu.Unlock()
	if logger.entries != 1 {
		t.Errorf("Expected 1 log entry, got %d", logger.entries)
	}
}

func TestSearchService_GetListing(t *testing.T) {
	svc := NewSearchService(testListings(), NewCriteriaExtractor(nil), nil)

	if l := svc.GetListing(3); l == nil || l.Neighborhood != "Vera" {
		t.Errorf("Expected listing 3 in Vera, got %+v", l)
	}
	if l := svc.GetListing(999); l != nil {
		t.Errorf("Expected nil for an unknown ID, got %+v", l)
	}
}
