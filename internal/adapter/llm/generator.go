// Package llm generates flashcard candidates through an OpenAI-compatible chat API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "anthropic/claude-3.5-sonnet"

	maxFrontLength = 200
	maxBackLength  = 500
)

var (
	// ErrNotConfigured is returned when no API key was supplied.
	ErrNotConfigured = errors.New("llm: generation is not configured")
	// ErrNoCandidates is returned when the model produced nothing usable.
	ErrNoCandidates = errors.New("llm: no valid flashcards generated")
)

var codeFence = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// Config configures the Generator.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
	SiteURL     string
	SiteName    string
}

// Generator asks a chat model for flashcards in a strict JSON array format.
type Generator struct {
	client     *openai.Client
	model      string
	maxTokens  int
	temp       float32
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	configured bool
	log        *slog.Logger
}

// NewGenerator creates a Generator. Zero values in cfg fall back to defaults.
func NewGenerator(cfg Config, logger *slog.Logger) *Generator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	clientConfig.HTTPClient = &http.Client{
		Transport: &attributionTransport{
			base:     http.DefaultTransport,
			siteURL:  cfg.SiteURL,
			siteName: cfg.SiteName,
		},
	}

	return &Generator{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      model,
		maxTokens:  maxTokens,
		temp:       cfg.Temperature,
		timeout:    timeout,
		maxRetries: max(0, cfg.MaxRetries),
		retryDelay: retryDelay,
		configured: cfg.APIKey != "",
		log:        logger.With("adapter", "llm"),
	}
}

// Generate returns up to maxCards candidates extracted from text. Candidates
// with an empty or oversized side are dropped.
func (g *Generator) Generate(ctx context.Context, text string, maxCards int) ([]domain.FlashcardCandidate, error) {
	if !g.configured {
		return nil, ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(maxCards)},
			{Role: openai.ChatMessageRoleUser, Content: "Create flashcards from this text:\n\n" + text},
		},
	}

	start := time.Now()
	resp, err := g.completeWithRetry(ctx, req)
	if err != nil {
		g.log.ErrorContext(ctx, "llm request failed",
			slog.String("error", err.Error()),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("llm: request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("llm: empty response")
	}

	candidates, err := parseCandidates(resp.Choices[0].Message.Content)
	if err != nil {
		g.log.WarnContext(ctx, "llm response not parseable", slog.String("error", err.Error()))
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) > maxCards {
		candidates = candidates[:maxCards]
	}

	g.log.DebugContext(ctx, "llm generation completed",
		slog.Int("text_length", utf8.RuneCountInString(text)),
		slog.Int("candidates", len(candidates)),
		slog.Int("tokens", resp.Usage.TotalTokens),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
	)

	return candidates, nil
}

// completeWithRetry retries network errors, 429 and 5xx responses with exponential backoff.
func (g *Generator) completeWithRetry(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	delay := g.retryDelay
	for attempt := 0; ; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		resp, err := g.client.CreateChatCompletion(callCtx, req)
		cancel()

		if err == nil || attempt >= g.maxRetries || !retryable(err) || ctx.Err() != nil {
			return resp, err
		}

		g.log.WarnContext(ctx, "llm retry",
			slog.Int("attempt", attempt+1),
			slog.String("reason", err.Error()),
		)

		select {
		case <-ctx.Done():
			return resp, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	// Transport-level failure.
	return true
}

type rawCandidate struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

func parseCandidates(content string) ([]domain.FlashcardCandidate, error) {
	content = strings.TrimSpace(content)
	if m := codeFence.FindStringSubmatch(content); len(m) > 1 {
		content = m[1]
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("llm: response is not a JSON array: %w", err)
	}

	out := make([]domain.FlashcardCandidate, 0, len(raw))
	for _, item := range raw {
		var c rawCandidate
		if err := json.Unmarshal(item, &c); err != nil || c.Front == nil || c.Back == nil {
			continue
		}
		front, back := strings.TrimSpace(*c.Front), strings.TrimSpace(*c.Back)
		if front == "" || back == "" ||
			utf8.RuneCountInString(front) > maxFrontLength || utf8.RuneCountInString(back) > maxBackLength {
			continue
		}
		out = append(out, domain.FlashcardCandidate{Front: front, Back: back})
	}
	return out, nil
}

func systemPrompt(maxCards int) string {
	return fmt.Sprintf(`You are an expert flashcard creator. Create high-quality flashcards from the provided text.

Rules:
1. Create exactly %d flashcards (or fewer if the text doesn't contain enough information)
2. Each flashcard has a FRONT (question or prompt) and a BACK (answer or explanation)
3. Front must be at most %d characters
4. Back must be at most %d characters
5. Focus on key concepts, definitions, facts and important details
6. Make questions clear and unambiguous

Respond with a JSON array only, in this exact structure:
[
  {"front": "Question here", "back": "Answer here"}
]`, maxCards, maxFrontLength, maxBackLength)
}

// attributionTransport adds the OpenRouter attribution headers when set.
type attributionTransport struct {
	base     http.RoundTripper
	siteURL  string
	siteName string
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.siteURL == "" && t.siteName == "" {
		return t.base.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	if t.siteURL != "" {
		r.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		r.Header.Set("X-Title", t.siteName)
	}
	return t.base.RoundTrip(r)
}
