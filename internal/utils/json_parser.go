package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseModelJSON parses a JSON object out of raw model output. Models asked
// for strict JSON still occasionally wrap it in markdown code fences or
// surround it with prose, so parsing is attempted in stages:
//   - the input as-is
//   - the input with fence delimiter lines stripped
//   - the first balanced JSON object found in the text
func ParseModelJSON(input string, target interface{}) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty model output")
	}

	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if stripped := StripCodeFences(input); stripped != input {
		if err := json.Unmarshal([]byte(stripped), target); err == nil {
			return nil
		}
	}

	if obj := firstJSONObject(input); obj != "" {
		if err := json.Unmarshal([]byte(obj), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no parseable JSON in model output: %s", truncate(input, 120))
}

// StripCodeFences removes markdown fence delimiter lines, including fences
// carrying a language tag such as "```json".
func StripCodeFences(input string) string {
	lines := strings.Split(input, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// firstJSONObject returns the first balanced {...} block in the input,
// ignoring braces inside string literals.
func firstJSONObject(input string) string {
	start := strings.Index(input, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escape := false

	for i := start; i < len(input); i++ {
		ch := input[i]

		if escape {
			escape = false
			continue
		}

		switch ch {
		case '\\':
			escape = true
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return input[start : i+1]
				}
			}
		}
	}

	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
