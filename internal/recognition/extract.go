package recognition

import (
	"strings"

	"github.com/tidwall/gjson"
)

// shapeMatcher tries to locate the model's answer text inside one known
// response envelope shape. It reports false when the shape does not match or
// yields empty text.
type shapeMatcher struct {
	name  string
	match func(body string) (string, bool)
}

// envelopeShapes is the fixed priority order for response extraction. The
// first shape whose path exists and yields non-empty text wins, even when a
// later shape would also match.
var envelopeShapes = []shapeMatcher{
	{name: "output-choices", match: matchOutputChoices},
	{name: "chat-choices", match: matchChatChoices},
	{name: "result-response", match: matchResultResponse},
}

// matchOutputChoices handles the DashScope array-of-parts form:
// output.choices[0].message.content[0].text.
func matchOutputChoices(body string) (string, bool) {
	v := gjson.Get(body, "output.choices.0.message.content.0.text")
	return textValue(v)
}

// matchChatChoices handles the OpenAI-style flat string form:
// choices[0].message.content.
func matchChatChoices(body string) (string, bool) {
	v := gjson.Get(body, "choices.0.message.content")
	return textValue(v)
}

// matchResultResponse handles the generic wrapper form: result.response.
func matchResultResponse(body string) (string, bool) {
	v := gjson.Get(body, "result.response")
	return textValue(v)
}

func textValue(v gjson.Result) (string, bool) {
	if v.Type != gjson.String {
		return "", false
	}
	if strings.TrimSpace(v.String()) == "" {
		return "", false
	}
	return v.String(), true
}

// ExtractText locates the model's textual answer inside the raw response
// body, trying each known envelope shape in priority order. It returns an
// ExtractionError carrying the raw body when none match.
func ExtractText(body string) (string, error) {
	for _, shape := range envelopeShapes {
		if text, ok := shape.match(body); ok {
			return text, nil
		}
	}
	return "", &ExtractionError{RawBody: body}
}
