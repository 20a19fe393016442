package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultModel is the model asked when none is configured
	DefaultModel = "gemini-2.0-flash"
	// DefaultTimeout bounds one Ask call
	DefaultTimeout = 30 * time.Second
)

// ErrUpstream wraps every failure of the text generation call
var ErrUpstream = errors.New("text generation failed")

// Oracle turns a prompt into lines of generated text
type Oracle interface {
	Ask(ctx context.Context, prompt string) ([]string, error)
}

// Client implements Oracle against an OpenAI-compatible chat completions API
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
	logger  *log.Logger
}

type settings struct {
	baseURL    string
	model      string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a Client
type Option func(*settings)

// WithBaseURL points the client at another OpenAI-compatible endpoint
func WithBaseURL(u string) Option {
	return func(s *settings) {
		if u != "" {
			s.baseURL = u
		}
	}
}

// WithModel sets the model name sent with each request
func WithModel(m string) Option {
	return func(s *settings) {
		if m != "" {
			s.model = m
		}
	}
}

// WithTimeout bounds a single Ask call, retries included
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMaxRetries sets how often a failed request is retried
func WithMaxRetries(n int) Option {
	return func(s *settings) { s.maxRetries = n }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// NewClient creates a client authenticated with apiKey
func NewClient(apiKey string, opts ...Option) *Client {
	s := settings{
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		timeout:    DefaultTimeout,
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(withTrailingSlash(s.baseURL)),
		option.WithMaxRetries(s.maxRetries),
	}
	if s.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(s.httpClient))
	}

	return &Client{
		api:     openai.NewClient(reqOpts...),
		model:   s.model,
		timeout: s.timeout,
		logger:  s.logger,
	}
}

// Model returns the model name requests are sent to
func (c *Client) Model() string {
	return c.model
}

// Ask sends prompt as a single user message and returns the reply split into lines
func (c *Client) Ask(ctx context.Context, prompt string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: upstream status %d: %w", ErrUpstream, apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	c.logger.Debug("oracle answered", "model", c.model, "latency", time.Since(start))

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUpstream)
	}

	return splitLines(content), nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
