package recognition

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"chineseName":"蓝鲸"}`,
			want: `{"chineseName":"蓝鲸"}`,
		},
		{
			name: "fenced with language tag",
			text: "```json\n{\"chineseName\":\"蓝鲸\"}\n```",
			want: `{"chineseName":"蓝鲸"}`,
		},
		{
			name: "prose around the object",
			text: `根据图片分析，识别结果如下：{"chineseName":"蓝鲸","confidence":0.9}希望对您有帮助。`,
			want: `{"chineseName":"蓝鲸","confidence":0.9}`,
		},
		{
			name: "fence and prose combined",
			text: "当然可以。\n```json\n{\"confidence\": 0.5}\n```\n以上是识别结果。",
			want: `{"confidence": 0.5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.text)
			if err != nil {
				t.Fatalf("ExtractJSON failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSON_NoBraces(t *testing.T) {
	_, err := ExtractJSON("抱歉，我无法识别这张图片。")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestExtractJSON_MalformedCandidate(t *testing.T) {
	// Braces exist but the substring between them is not valid JSON.
	_, err := ExtractJSON(`the shape is {not: valid json}`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Cause == nil {
		t.Error("ParseError for a malformed candidate should carry the decode error")
	}
}

func TestCoerce_FallsBackToDefault(t *testing.T) {
	got := Coerce("no json here at all")
	if got != DefaultDocument() {
		t.Errorf("got %q, want the default document", got)
	}
}

func TestCoerce_Idempotent(t *testing.T) {
	inputs := []string{
		`{"chineseName":"蓝鲸","confidence":0.9}`,
		"```json\n{\"confidence\": 1}\n```",
		"not json at all",
		"",
	}

	for _, in := range inputs {
		once := Coerce(in)
		twice := Coerce(once)
		if once != twice {
			t.Errorf("Coerce not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestDefaultDocument_MatchesDefaultRecord(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(DefaultDocument()), &r); err != nil {
		t.Fatalf("default document is not valid JSON: %v", err)
	}
	if r != DefaultRecord() {
		t.Errorf("default document decodes to %+v, want %+v", r, DefaultRecord())
	}
}
