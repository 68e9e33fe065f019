package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyMessage is returned before any upstream call when the chat
// message is blank.
var ErrEmptyMessage = errors.New("message must not be empty")

// PlaceholderAPIKey marks an unconfigured upstream key; no
// Authorization header is sent while it is in place.
const PlaceholderAPIKey = "your-api-key-here"

// ChatConfig holds the settings of the upstream completion service.
// Endpoint is the full chat-completions URL; health and model probes
// derive their origin from it.
type ChatConfig struct {
	Endpoint    string
	Model       string
	APIKey      string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// ChatResponse carries the upstream reply alongside the model name and
// the usage block exactly as the upstream reported it.
type ChatResponse struct {
	Message string          `json:"message"`
	Model   string          `json:"model"`
	Usage   json.RawMessage `json:"usage"`
}

// ChatService relays chat messages to an OpenAI-compatible completion
// endpoint.
type ChatService interface {
	Chat(ctx context.Context, message string) (*ChatResponse, error)
	Status(ctx context.Context) error
	Models(ctx context.Context) (json.RawMessage, error)
}

type chatService struct {
	cfg    ChatConfig
	client *http.Client
	logger zerolog.Logger
}

// NewChatService creates a new ChatService instance. The HTTP client
// enforces cfg.Timeout on every upstream call.
func NewChatService(cfg ChatConfig, logger zerolog.Logger) ChatService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &chatService{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage json.RawMessage `json:"usage"`
}

func (s *chatService) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	body, err := json.Marshal(completionRequest{
		Model:       s.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: message}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		TopP:        s.cfg.TopP,
		Stream:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" && s.cfg.APIKey != PlaceholderAPIKey {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("endpoint", s.cfg.Endpoint).Msg("ai service call failed")
		return nil, fmt.Errorf("ai service call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai service responded with status %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("decode ai response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message == nil || completion.Choices[0].Message.Content == nil {
		return nil, errors.New("ai service returned a malformed response")
	}

	return &ChatResponse{
		Message: *completion.Choices[0].Message.Content,
		Model:   s.cfg.Model,
		Usage:   completion.Usage,
	}, nil
}

// Status probes the conventional health path on the upstream origin.
func (s *chatService) Status(ctx context.Context) error {
	resp, err := s.get(ctx, deriveBaseOrigin(s.cfg.Endpoint)+"/health")
	if err != nil {
		return fmt.Errorf("ai service not connected: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ai service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// Models relays the upstream model listing's data field verbatim.
func (s *chatService) Models(ctx context.Context) (json.RawMessage, error) {
	resp, err := s.get(ctx, deriveBaseOrigin(s.cfg.Endpoint)+"/v1/models")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch model list: status %d", resp.StatusCode)
	}

	var listing struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode model list: %w", err)
	}

	return listing.Data, nil
}

func (s *chatService) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// deriveBaseOrigin reduces the configured completions URL to its
// scheme+host origin. Misconfigured endpoints are common, so when the
// URL does not parse into a scheme and host the string is truncated at
// the first "/v1/" instead.
func deriveBaseOrigin(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err == nil && u.Scheme != "" && u.Host != "" {
		return u.Scheme + "://" + u.Host
	}

	if i := strings.Index(endpoint, "/v1/"); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
