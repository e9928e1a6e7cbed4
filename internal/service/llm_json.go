package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Helpers for coercing free-text LLM output into structured data. Models
// routinely wrap their JSON in Markdown code fences or surround it with prose,
// so decoding is: strip fences, try a straight unmarshal, then fall back to
// the first balanced {...} or [...] substring. Callers supply their own typed
// default when everything fails.

// stripCodeFences removes ```json / ``` wrappers and trims whitespace.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// extractFirstBlock returns the first balanced block delimited by open/close,
// or "" when none exists. Nesting is respected; strings inside the block are
// not parsed, which is good enough for the shapes we ask the model for.
func extractFirstBlock(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// decodeStringArray parses a JSON array of strings out of raw LLM output.
func decodeStringArray(raw string) ([]string, error) {
	cleaned := stripCodeFences(raw)

	var items []string
	if err := json.Unmarshal([]byte(cleaned), &items); err == nil {
		return items, nil
	}

	block := extractFirstBlock(cleaned, '[', ']')
	if block == "" {
		return nil, fmt.Errorf("no JSON array found in model output")
	}
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil, fmt.Errorf("failed to decode JSON array from model output: %w", err)
	}
	return items, nil
}

// decodeObject parses a JSON object out of raw LLM output into dest.
func decodeObject(raw string, dest any) error {
	cleaned := stripCodeFences(raw)

	if err := json.Unmarshal([]byte(cleaned), dest); err == nil {
		return nil
	}

	block := extractFirstBlock(cleaned, '{', '}')
	if block == "" {
		return fmt.Errorf("no JSON object found in model output")
	}
	if err := json.Unmarshal([]byte(block), dest); err != nil {
		return fmt.Errorf("failed to decode JSON object from model output: %w", err)
	}
	return nil
}
