package utils

import (
	"testing"
)

type testPayload struct {
	FollowUp string `json:"follow_up"`
	Finalize bool   `json:"finalize"`
}

func TestParseModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    testPayload
	}{
		{
			name:  "pure JSON",
			input: `{"follow_up": "How many bedrooms?", "finalize": false}`,
			want:  testPayload{FollowUp: "How many bedrooms?"},
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"follow_up\": \"\", \"finalize\": true}\n```",
			want:  testPayload{Finalize: true},
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"follow_up\": \"ok\", \"finalize\": true}\n```",
			want:  testPayload{FollowUp: "ok", Finalize: true},
		},
		{
			name:  "JSON with surrounding prose",
			input: "Here is the JSON you asked for:\n{\"follow_up\": \"x\", \"finalize\": false}\nHope that helps!",
			want:  testPayload{FollowUp: "x"},
		},
		{
			name:  "braces inside string values",
			input: `prefix {"follow_up": "use {curly} braces", "finalize": true} suffix`,
			want:  testPayload{FollowUp: "use {curly} braces", Finalize: true},
		},
		{
			name:    "no JSON at all",
			input:   "I'm sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			input:   `{"follow_up": "x"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testPayload
			err := ParseModelJSON(tt.input, &got)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	want := `{"a": 1}`

	if got := StripCodeFences(input); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	// No fences: input unchanged
	if got := StripCodeFences(`{"a": 1}`); got != `{"a": 1}` {
		t.Errorf("Got %q", got)
	}
}
