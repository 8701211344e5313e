package recognition

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers one JSON object from model output that may mix JSON
// with prose and markdown code fences. It strips fence markers, takes the
// first-"{" to last-"}" substring, and verifies it parses. A ParseError is
// returned when no such substring exists or it is not valid JSON.
func ExtractJSON(text string) (string, error) {
	cleaned := stripCodeFences(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &ParseError{Candidate: cleaned}
	}

	candidate := cleaned[start : end+1]
	if err := json.Unmarshal([]byte(candidate), new(map[string]any)); err != nil {
		return "", &ParseError{Candidate: candidate, Cause: err}
	}
	return candidate, nil
}

// Coerce returns the JSON object embedded in text, or the canonical default
// document when none can be recovered. Coerce is idempotent: the default
// document is itself valid JSON delimited by braces, so feeding Coerce its
// own output returns that output unchanged.
func Coerce(text string) string {
	candidate, err := ExtractJSON(text)
	if err != nil {
		return DefaultDocument()
	}
	return candidate
}

// DefaultDocument is the canonical default JSON document: the serialized form
// of DefaultRecord.
func DefaultDocument() string {
	data, err := json.Marshal(DefaultRecord())
	if err != nil {
		// Record contains only strings and a float; this cannot happen.
		panic(err)
	}
	return string(data)
}

// stripCodeFences removes markdown code fence markers, including a "json"
// language tag, without touching the fenced content.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
