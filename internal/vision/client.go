// Package vision is the HTTP client for the DashScope-style vision endpoint.
// It owns request encoding (prompt + base64 image data URI) and the single
// synchronous call; interpretation of the response body belongs to the
// recognition package.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultModel is the vision model used when config does not name one.
	DefaultModel = "qwen-vl-plus"

	defaultMaxTokens   = 2000
	defaultTemperature = 0.1
	defaultTopP        = 0.8
	defaultTimeout     = 60 * time.Second
)

// Config holds vision client configuration. Endpoint and APIKey are always
// externally supplied; there are no embedded credential defaults.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// Client calls the vision endpoint.
type Client struct {
	endpoint    string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	topP        float64
	client      *http.Client
}

// NewClient creates a vision client. Sampling parameters fall back to the
// fixed defaults when unset.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.TopP == 0 {
		cfg.TopP = defaultTopP
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Complete sends one image plus instruction text to the vision endpoint and
// returns the raw response body. There are no retries; cancellation of ctx
// surfaces as a TransportError like any other network failure.
func (c *Client) Complete(ctx context.Context, image []byte, contentType, prompt string) (string, error) {
	reqBody := c.encodeRequest(image, contentType, prompt)

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return string(respBody), nil
}

// encodeRequest assembles the outbound payload: model, one user message with
// an ordered [text, inline image] content list, and the generation
// parameters. The image goes inline as a base64 data URI; no normalization
// is applied.
func (c *Client) encodeRequest(image []byte, contentType, prompt string) *visionRequest {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

	return &visionRequest{
		Model: c.model,
		Input: visionInput{
			Messages: []visionMessage{
				{
					Role: "user",
					Content: []visionContent{
						{Text: prompt},
						{Image: dataURI},
					},
				},
			},
		},
		Parameters: visionParameters{
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
			TopP:        c.topP,
		},
	}
}

// Vision endpoint wire types (DashScope-native).

type visionRequest struct {
	Model      string           `json:"model"`
	Input      visionInput      `json:"input"`
	Parameters visionParameters `json:"parameters"`
}

type visionInput struct {
	Messages []visionMessage `json:"messages"`
}

type visionMessage struct {
	Role    string          `json:"role"`
	Content []visionContent `json:"content"`
}

type visionContent struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

type visionParameters struct {
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}
