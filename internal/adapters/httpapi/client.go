package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// Client is an HTTP implementation of the Gateway interface. Both calls are
// single-shot with no retry; any transport, status, or decode failure is one
// undifferentiated error from the caller's view.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// classifyRequest is the wire format for /api/classify
type classifyRequest struct {
	Email string `json:"email"`
}

// classifyResponse is the wire format returned by /api/classify
type classifyResponse struct {
	IsSpam          bool    `json:"is_spam"`
	SpamProbability float64 `json:"spam_probability"`
	HamProbability  float64 `json:"ham_probability"`
	Indicators      struct {
		Urgency    float64 `json:"urgency"`
		Links      float64 `json:"links"`
		Grammar    float64 `json:"grammar"`
		Formatting float64 `json:"formatting"`
	} `json:"indicators"`
}

// chatRequest is the wire format for /api/chatbot
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the wire format returned by /api/chatbot
type chatResponse struct {
	Response string `json:"response"`
}

// NewClient creates a new gateway client for the given base URL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Classify submits raw email text and returns the service's verdict
func (c *Client) Classify(ctx context.Context, text string) (*core.ClassificationResult, error) {
	var resp classifyResponse
	if err := c.post(ctx, "/api/classify", classifyRequest{Email: text}, &resp); err != nil {
		return nil, err
	}

	return &core.ClassificationResult{
		IsSpam:          resp.IsSpam,
		SpamProbability: resp.SpamProbability,
		HamProbability:  resp.HamProbability,
		Indicators: core.FeatureIndicators{
			Urgency:    resp.Indicators.Urgency,
			Links:      resp.Indicators.Links,
			Grammar:    resp.Indicators.Grammar,
			Formatting: resp.Indicators.Formatting,
		},
		AnalyzedAt: time.Now(),
	}, nil
}

// Chat sends one message to the assistant and returns its reply
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp chatResponse
	if err := c.post(ctx, "/api/chatbot", chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("request to %s failed with status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	c.logger.Debug("Gateway call completed",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
