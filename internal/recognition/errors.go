package recognition

import "fmt"

// ExtractionError reports that no known response envelope shape yielded
// answer text. RawBody is kept for diagnostics.
type ExtractionError struct {
	RawBody string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no known envelope shape matched response (%d bytes)", len(e.RawBody))
}

// ParseError reports that the candidate substring extracted from the model's
// answer is not valid JSON.
type ParseError struct {
	Candidate string
	Cause     error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("candidate is not valid JSON: %v", e.Cause)
	}
	return "no JSON object found in model output"
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
