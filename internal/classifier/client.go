// internal/classifier/client.go
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"support-responder/internal/common/config"
	"support-responder/internal/common/logger"
)

var (
	ErrClassifierTimeout = errors.New("CLASSIFIER_TIMEOUT")
	ErrClassifierFailed  = errors.New("CLASSIFIER_FAILED")
)

// Client calls the chat-completion endpoint used as the routing
// fallback. The HTTP client carries no timeout of its own; the request
// context bounds every attempt.
type Client struct {
	config *config.ClassifierConfig
	client *http.Client
	logger logger.Logger
}

func NewClient(cfg *config.ClassifierConfig, log logger.Logger) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"component": "classifier"}),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the system and user prompts and returns the model's
// reply text. Non-OK statuses and transport errors are retried with
// exponential backoff up to MaxRetries.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.config.Timeout)*time.Millisecond)
	defer cancel()

	body, _ := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ErrClassifierTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrClassifierFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
		}

		resp, lastErr = c.client.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			return "", ErrClassifierTimeout
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrClassifierTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrClassifierFailed, lastErr)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no successful response after retries", ErrClassifierFailed)
	}
	defer resp.Body.Close()

	var apiResponse chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("%w: decode error: %v", ErrClassifierFailed, err)
	}
	if len(apiResponse.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrClassifierFailed)
	}

	text := strings.TrimSpace(apiResponse.Choices[0].Message.Content)
	c.logger.Debug("classifier completion received", map[string]interface{}{
		"length": len(text),
	})
	return text, nil
}
