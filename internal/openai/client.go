package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const analysisPrompt = `Analyze the food in this image and respond with ONLY a JSON object in exactly this format:
{
  "food_description": "short description of the food",
  "estimated_serving": "estimated serving size, e.g. 1 plate (350g)",
  "food_category": "vegetables|fruits|grains|protein|dairy",
  "calories": 0,
  "protein": 0,
  "carbs": 0,
  "fat": 0,
  "confidence": "high|medium|low"
}
calories is kcal, protein/carbs/fat are grams, all for the estimated serving.
Do not wrap the JSON in markdown. Do not add any other text.`

const tipPrompt = "Give one short, practical nutrition tip for someone tracking their meals. One or two sentences, plain text."

const fallbackTip = "Aim for balanced meals with protein, whole grains and vegetables, and keep a glass of water nearby through the day."

// fallbackModels is served when the catalog cannot be fetched or no API key
// is configured.
var fallbackModels = []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo"}

// visionFamilies filters the provider catalog down to models the analysis
// prompt is known to work with.
var visionFamilies = []string{"gpt-4o", "gpt-4-turbo", "gpt-4.1", "o1"}

// Config is the immutable per-call configuration for the analysis provider.
// A fresh value is built for every request; the client itself carries no
// mutable state, so concurrent calls cannot observe each other's settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1000
	}
	return c
}

type ImageURL struct {
	URL string `json:"url"`
}

type ContentItem struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzeFood sends the captured photo to the vision model and returns the
// validated nutrition record. Every failure path surfaces an error; partial
// records are never returned.
func (c *Client) AnalyzeFood(ctx context.Context, cfg Config, imageBase64 string) (*NutritionAnalysis, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	req := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []ChatMessage{
			{
				Role: "user",
				Content: []ContentItem{
					{Type: "text", Text: analysisPrompt},
					{Type: "image_url", ImageURL: &ImageURL{
						URL: "data:image/jpeg;base64," + imageBase64,
					}},
				},
			},
		},
		Temperature: 0.1,
		MaxTokens:   cfg.MaxTokens,
	}

	content, err := c.complete(ctx, cfg, req)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	return parseNutrition(jsonStr)
}

// TestConnection checks the configured key against the models endpoint. All
// failures read as false, it never returns an error.
func (c *Client) TestConnection(ctx context.Context, cfg Config) bool {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return false
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/models", nil)
	if err != nil {
		return false
	}
	request.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return false
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK
}

// GenerateNutritionTip returns the model's reply verbatim, falling back to a
// canned sentence on any failure.
func (c *Client) GenerateNutritionTip(ctx context.Context, cfg Config) string {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return fallbackTip
	}

	req := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []ChatMessage{
			{
				Role:    "user",
				Content: []ContentItem{{Type: "text", Text: tipPrompt}},
			},
		},
		Temperature: 0.7,
		MaxTokens:   120,
	}

	content, err := c.complete(ctx, cfg, req)
	if err != nil {
		return fallbackTip
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return fallbackTip
	}
	return content
}

// AvailableModels fetches the provider catalog filtered to recognized vision
// families, with a hardcoded fallback on any error or missing key.
func (c *Client) AvailableModels(ctx context.Context, cfg Config) []string {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return fallbackModels
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/models", nil)
	if err != nil {
		return fallbackModels
	}
	request.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fallbackModels
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fallbackModels
	}

	var catalog struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(response.Body).Decode(&catalog); err != nil {
		return fallbackModels
	}

	var models []string
	for _, entry := range catalog.Data {
		for _, family := range visionFamilies {
			if strings.HasPrefix(entry.ID, family) {
				models = append(models, entry.ID)
				break
			}
		}
	}
	if len(models) == 0 {
		return fallbackModels
	}
	return models
}

// complete posts a chat-completion request and returns the first choice's
// content. HTTP failure statuses map onto the error taxonomy.
func (c *Client) complete(ctx context.Context, cfg Config, req ChatCompletionRequest) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	defer response.Body.Close()

	if err := statusError(response.StatusCode); err != nil {
		return "", err
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices", ErrInvalidResponse)
	}

	return result.Choices[0].Message.Content, nil
}

func statusError(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return ErrUpstream
	default:
		return fmt.Errorf("analysis service returned status %d", code)
	}
}
