package recognition_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/vision"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func dashscopeBody(text string) string {
	return `{"output":{"choices":[{"message":{"content":[{"text":` + jsonString(text) + `}]}}]}}`
}

func jsonString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestPipeline_CleanAnswer(t *testing.T) {
	transport := vision.NewMockTransport(dashscopeBody(
		`{"scientificName":"Amphiprion ocellaris","chineseName":"小丑鱼","confidence":0.92}`,
	))
	p := recognition.NewPipeline(transport, discardLogger())

	r := p.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if r.ChineseName != "小丑鱼" {
		t.Errorf("chineseName = %q", r.ChineseName)
	}
	if r.Confidence != 0.92 {
		t.Errorf("confidence = %v", r.Confidence)
	}
	// Absent fields are still filled.
	if r.Habitat == "" {
		t.Error("habitat left empty")
	}
	if transport.RequestCount() != 1 {
		t.Errorf("request count = %d, want 1", transport.RequestCount())
	}
}

func TestPipeline_FencedAnswerWithProse(t *testing.T) {
	transport := vision.NewMockTransport(dashscopeBody(
		"识别结果如下：\n```json\n{\"chineseName\":\"蓝鲸\",\"confidence\":0.88}\n```\n以上供参考。",
	))
	p := recognition.NewPipeline(transport, discardLogger())

	r := p.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if r.ChineseName != "蓝鲸" {
		t.Errorf("chineseName = %q", r.ChineseName)
	}
}

func TestPipeline_TransportFailure(t *testing.T) {
	transport := vision.NewMockTransport("")
	transport.Err = &vision.TransportError{Status: 500, Body: "internal error"}
	p := recognition.NewPipeline(transport, discardLogger())

	r := p.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if r != recognition.DefaultRecord() {
		t.Errorf("transport failure should yield the default record, got %+v", r)
	}
}

func TestPipeline_UnknownEnvelope(t *testing.T) {
	transport := vision.NewMockTransport(`{"status":"ok","payload":null}`)
	p := recognition.NewPipeline(transport, discardLogger())

	r := p.Recognize(context.Background(), []byte("img"), "image/png")
	if r != recognition.DefaultRecord() {
		t.Errorf("unmatched envelope should yield the default record, got %+v", r)
	}
}

func TestPipeline_AnswerWithoutJSON(t *testing.T) {
	transport := vision.NewMockTransport(dashscopeBody("抱歉，我无法识别这张图片中的生物。"))
	p := recognition.NewPipeline(transport, discardLogger())

	r := p.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if r != recognition.DefaultRecord() {
		t.Errorf("prose-only answer should yield the default record, got %+v", r)
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	transport := vision.NewMockTransport(dashscopeBody(`{"confidence":1}`))
	p := recognition.NewPipeline(transport, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := p.Recognize(ctx, []byte("img"), "image/jpeg")
	if r != recognition.DefaultRecord() {
		t.Errorf("cancelled context should yield the default record, got %+v", r)
	}
}

func TestPipeline_NeverReturnsTransportError(t *testing.T) {
	transport := vision.NewMockTransport("")
	transport.Err = errors.New("connection refused")
	p := recognition.NewPipeline(transport, discardLogger())

	// Recognize has no error return; the contract is a complete record.
	r := p.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if r.Description != recognition.FallbackDescription {
		t.Errorf("description = %q", r.Description)
	}
}
