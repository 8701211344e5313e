package recognition

import (
	"context"
	"log/slog"
)

// Transport performs one call to the vision endpoint and returns the raw
// response body. Implementations return an error for non-success status,
// network failure, or context cancellation.
type Transport interface {
	Complete(ctx context.Context, image []byte, contentType, prompt string) (string, error)
}

// Pipeline runs the full recognition flow: prompt + image out, complete
// record back. Its public contract is "always returns a complete Record;
// never returns an error for model-side failure" — transport, extraction,
// and parse failures all degrade to DefaultRecord and are observable only
// through the logger.
type Pipeline struct {
	transport Transport
	logger    *slog.Logger
}

// NewPipeline creates a recognition pipeline over the given transport.
func NewPipeline(transport Transport, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{transport: transport, logger: logger}
}

// Recognize identifies the species in the given image. Each stage returns a
// value or a tagged error; any error, from any stage, maps onto the single
// default-record path so the caller never sees a model-side failure.
func (p *Pipeline) Recognize(ctx context.Context, image []byte, contentType string) Record {
	body, err := p.transport.Complete(ctx, image, contentType, Prompt())
	if err != nil {
		p.logger.Error("vision call failed", "error", err)
		return DefaultRecord()
	}

	text, err := ExtractText(body)
	if err != nil {
		p.logger.Warn("no answer text in model response", "error", err, "body_bytes", len(body))
		return DefaultRecord()
	}

	doc, err := ExtractJSON(text)
	if err != nil {
		p.logger.Warn("model answer contained no usable JSON", "error", err)
		return DefaultRecord()
	}

	if err := ValidateDocument(doc); err != nil {
		// Diagnostics only: tolerant mapping handles partial documents.
		p.logger.Warn("model answer deviates from record schema", "error", err)
	}

	record := ApplyDefaults(MapRecord(doc))
	p.logger.Info("recognition complete",
		"species", record.ChineseName,
		"scientific_name", record.ScientificName,
		"confidence", record.Confidence,
	)
	return record
}
