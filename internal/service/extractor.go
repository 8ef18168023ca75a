package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"rea/internal/model"
	"rea/internal/utils"
)

// conversationWindow bounds how many trailing turns the model sees
const conversationWindow = 6

const extractionPrompt = `You are a concise real-estate assistant.
Given the conversation so far and the latest user message, return STRICT JSON ONLY (no prose).
Keys:
- filters: {
    city: str|Null,
    neighborhood: str|Null,
    price_min: int|Null,
    price_max: int|Null,
    property_type: "apartment"|"house"|"condo"|Null,
    transaction_type: "rent"|"buy"|Null,
    bedrooms_min: int|Null,
    amenities: list[str]  (subset of ["parking","garden","pool"]),
    near_schools: true|false|Null,
    near_transit: true|false|Null
  }
- follow_up: str
- finalize: bool
Rules:
- Use Null for missing fields.
- If user gives "800-1200", set price_min=800, price_max=1200.
- If user gives "up to 1200", set price_max=1200.
- If user says "near schools/transit", set corresponding boolean true.
- If user mentions rent/lease/monthly, set transaction_type="rent".
- If user mentions buy/purchase/for sale/mortgage, set transaction_type="buy".
Return JSON only.`

// Extractor turns a conversation into search criteria. Implementations return
// an error when they cannot serve the request, letting the caller try the next
// strategy.
type Extractor interface {
	Extract(ctx context.Context, conversation []model.Message) (*model.ExtractionResult, error)
}

// Generator is the model endpoint the LLM extractor talks to
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	IsEnabled() bool
}

// LLMExtractor asks a local language model for structured criteria
type LLMExtractor struct {
	client Generator
}

// NewLLMExtractor creates a model-backed extractor
func NewLLMExtractor(client Generator) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract sends the trailing conversation window to the model and parses its
// strict-JSON reply. Any transport or format problem is returned as an error
// so the caller can fall back.
func (e *LLMExtractor) Extract(ctx context.Context, conversation []model.Message) (*model.ExtractionResult, error) {
	if e.client == nil || !e.client.IsEnabled() {
		return nil, fmt.Errorf("model endpoint is not configured")
	}

	raw, err := e.client.Generate(ctx, buildPrompt(conversation))
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	var payload struct {
		Filters  *model.FilterCriteria `json:"filters"`
		FollowUp string                `json:"follow_up"`
		Finalize bool                  `json:"finalize"`
	}
	if err := utils.ParseModelJSON(raw, &payload); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if payload.Filters == nil {
		return nil, fmt.Errorf("model response is missing filters")
	}

	return &model.ExtractionResult{
		Filters:  payload.Filters.Normalized(),
		FollowUp: strings.TrimSpace(payload.FollowUp),
		Finalize: payload.Finalize,
	}, nil
}

func buildPrompt(conversation []model.Message) string {
	window := conversation
	if len(window) > conversationWindow {
		window = window[len(window)-conversationWindow:]
	}

	var b strings.Builder
	for i, m := range window {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.ToUpper(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}

	return fmt.Sprintf("%s\n\nCONVERSATION:\n%s\n\nReturn JSON now.", extractionPrompt, b.String())
}

// CriteriaExtractor composes the model-backed and pattern-based strategies,
// first success wins. Extraction never fails: if every strategy errors, a
// default result asking for the missing essentials is returned.
type CriteriaExtractor struct {
	strategies []Extractor
}

// NewCriteriaExtractor wires the standard strategy chain for the given model
// client, which may be nil when no model endpoint is available.
func NewCriteriaExtractor(client Generator) *CriteriaExtractor {
	return &CriteriaExtractor{
		strategies: []Extractor{
			NewLLMExtractor(client),
			NewFallbackExtractor(),
		},
	}
}

// Extract runs the strategy chain over the conversation
func (x *CriteriaExtractor) Extract(ctx context.Context, conversation []model.Message) *model.ExtractionResult {
	for _, s := range x.strategies {
		result, err := s.Extract(ctx, conversation)
		if err == nil {
			return result
		}
		log.Printf("extraction strategy failed: %v", err)
	}
	return defaultExtractionResult()
}

// defaultExtractionResult prompts the user for the minimum viable criteria
func defaultExtractionResult() *model.ExtractionResult {
	return &model.ExtractionResult{
		Filters:  model.FilterCriteria{},
		FollowUp: "Please share your city, budget, and minimum bedrooms.",
		Finalize: false,
	}
}
