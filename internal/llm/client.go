package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/httpclient"
	"github.com/IsaacDSC/trendforge/pkg/retry"
)

var (
	ErrEmptyCompletion = errors.New("llm: empty completion")
	ErrMissingAPIKey   = errors.New("llm: missing api key")
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4-turbo-preview"
)

// Request is one JSON-mode chat completion.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	retryOpts  []retry.Option
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRetry(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		model:      DefaultModel,
		httpClient: httpclient.NewHTTPClientWithLogging(120*time.Second, false),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// CompleteJSON sends req in JSON mode and decodes the message content into out.
// 5xx and transport failures are retried; any other non-2xx status is returned as *retry.StatusError.
func (c *Client) CompleteJSON(ctx context.Context, req Request, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	l := ctxlogger.GetLogger(ctx)

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	b, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       messages,
		MaxTokens:      req.MaxTokens,
		Temperature:    req.Temperature,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return fmt.Errorf("llm: marshal request: %w", err)
	}

	resp, err := retry.DoHTTP(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Authorization", "Bearer "+c.apiKey)
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		return r, nil
	}, c.retryOpts...)
	if err != nil {
		return fmt.Errorf("llm: chat completion: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &retry.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("llm: decode response: %w", err)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return ErrEmptyCompletion
	}

	l.Debug("llm completion received",
		"model", c.model,
		"prompt_tokens", parsed.Usage.PromptTokens,
		"completion_tokens", parsed.Usage.CompletionTokens,
	)

	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("llm: decode completion content: %w", err)
	}

	return nil
}
