package groq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
	"github.com/Siddhartha1011/AI-Astrologer/internal/metrics"
	"github.com/Siddhartha1011/AI-Astrologer/internal/ports"
)

const (
	systemPrompt = "You are an expert astrologer."
	temperature  = 0.7
	topP         = 0.9
	maxTokens    = 800
)

// Client implements ports.Generator via Groq's OpenAI-compatible API.
type Client struct {
	http    *resty.Client
	apiKey  string
	baseURL string
	model   string
	logger  *zap.Logger
}

var _ ports.Generator = (*Client)(nil)

// NewClient builds a Groq client. A zero timeout leaves requests bounded only
// by their context.
func NewClient(apiKey, baseURL, model string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout).
			SetRetryCount(0),
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		logger:  logger.With(zap.String("component", "groq")),
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate makes exactly one chat-completion call and returns the trimmed
// content of the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrLLMNotConfigured
	}

	start := time.Now()
	defer func() { metrics.ObserveExternal("groq", time.Since(start).Seconds()) }()

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: prompt},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
			TopP:        topP,
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamLLM, resp.StatusCode(), resp.String())
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrUpstreamLLM)
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}

	c.logger.Debug("completion received", zap.String("model", c.model), zap.Int("chars", len(text)))
	return text, nil
}
