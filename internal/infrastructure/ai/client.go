package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/packtrack/backend/internal/infrastructure/config"
	"golang.org/x/time/rate"
)

// Suggestion is a single packing recommendation from the model
type Suggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// SuggestionResult is the payload the model is asked to produce
type SuggestionResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Tips        []string     `json:"tips"`
}

// TripContext describes the trip the model should pack for
type TripContext struct {
	Weather      string `json:"weather"`
	Temperature  int    `json:"temperature"`
	DurationDays int    `json:"duration_days"`
	Destination  string `json:"destination"`
	Month        string `json:"month"`
}

// Client calls an OpenAI-compatible chat completions endpoint. Requests are
// rate limited and bounded by the configured timeout; any failure is
// returned to the caller, which falls back to the local rule tables.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
}

// NewClient creates a new suggestion client from configuration
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute)/60, cfg.RequestsPerMinute),
	}
}

const systemPrompt = "You are a packing assistant for a household move. " +
	"Respond with a single JSON object of the form " +
	`{"suggestions":[{"name":"","category":"","priority":"","reason":""}],"tips":[""]}` +
	" and nothing else. Priorities are high, medium or low."

// SuggestPackingItems asks the model for items and tips for the given trip
func (c *Client) SuggestPackingItems(ctx context.Context, trip TripContext) (*SuggestionResult, error) {
	prompt := fmt.Sprintf(
		"Suggest items to pack. Weather: %s. Temperature: %d F. Trip length: %d days. Destination: %s. Month: %s.",
		trip.Weather, trip.Temperature, trip.DurationDays, trip.Destination, trip.Month,
	)
	return c.complete(ctx, prompt)
}

// SuggestCategory asks the model to categorize a single item name
func (c *Client) SuggestCategory(ctx context.Context, itemName string) (*SuggestionResult, error) {
	prompt := fmt.Sprintf(
		"Suggest a category and tags for this belonging: %q. Return it as the only entry in suggestions, with tags joined into the reason field.",
		itemName,
	)
	return c.complete(ctx, prompt)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, userPrompt string) (*SuggestionResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("malformed completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion response has no choices")
	}

	var result SuggestionResult
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("completion content is not the expected JSON: %w", err)
	}
	return &result, nil
}
