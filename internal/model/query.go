package model

// ChatRequest carries the conversation history for one extraction turn
type ChatRequest struct {
	Messages []Message `json:"messages" binding:"required"`
	Limit    int       `json:"limit,omitempty"`
}

// ChatResponse is the result of one extract-and-rank cycle
type ChatResponse struct {
	FollowUp string          `json:"follow_up"`
	Finalize bool            `json:"finalize"`
	Filters  FilterCriteria  `json:"filters"`
	Results  []ScoredListing `json:"results"`
	Total    int             `json:"total"`
	Took     int64           `json:"took_ms"`
}

// SearchRequest carries explicit filter criteria, bypassing extraction
type SearchRequest struct {
	Filters FilterCriteria `json:"filters"`
	Limit   int            `json:"limit,omitempty"`
}

// SearchResponse is a ranked result set for explicit criteria
type SearchResponse struct {
	Results []ScoredListing `json:"results"`
	Total   int             `json:"total"`
	Took    int64           `json:"took_ms"`
}
