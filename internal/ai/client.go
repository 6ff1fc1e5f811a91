// ABOUTME: Gemini generateContent client used for summaries, tag ideas and tutoring.
// ABOUTME: Failures never reach callers; each operation has a fixed fallback.

package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/harper/neonotes/internal/logging"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultTimeout = 60 * time.Second
)

// Fallback answers.
const (
	MsgNotConfigured = "API Key not configured."
	MsgNoSummary     = "Could not generate summary."
	MsgSummaryError  = "Error generating summary. Please try again."
	MsgNoAnswer      = "I couldn't generate an answer."
	MsgChatError     = "Sorry, I'm having trouble connecting to the AI tutor right now."
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Gemini REST API. A client without an API key answers
// every request with its fallback and makes no network calls.
type Client struct {
	cfg    Config
	http   *resty.Client
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		cfg: cfg,
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
		logger: logger.WithPrefix("ai"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

func (c *Client) Model() string {
	return c.cfg.Model
}

func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	var out generateResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.cfg.APIKey).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.cfg.Model))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("generate content: %s: %s", resp.Status(), apiErr.Error.Message)
		}
		return "", fmt.Errorf("generate content: %s", resp.Status())
	}
	return out.text(), nil
}
