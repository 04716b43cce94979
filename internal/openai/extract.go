package openai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Food categories and confidence levels the model is instructed to use.
var (
	foodCategories   = []string{"vegetables", "fruits", "grains", "protein", "dairy"}
	confidenceLevels = []string{"high", "medium", "low"}
)

// NutritionAnalysis is the validated record produced from a model reply.
type NutritionAnalysis struct {
	FoodDescription  string  `json:"food_description"`
	EstimatedServing string  `json:"estimated_serving"`
	FoodCategory     string  `json:"food_category"`
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	Confidence       string  `json:"confidence"`
}

// extractJSONObject isolates the candidate JSON object from a model reply.
// Models wrap output in markdown fences or surround it with prose despite
// instructions, so the fences are stripped first and then everything outside
// the first '{' and last '}' is discarded.
func extractJSONObject(content string) (string, error) {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object in content", ErrInvalidResponse)
	}

	return content[start : end+1], nil
}

// parseNutrition decodes and structurally validates the candidate JSON.
// Every field must be present with the right JSON type; numeric fields are
// never coerced from strings. Any violation rejects the whole record.
func parseNutrition(jsonStr string) (*NutritionAnalysis, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	result := &NutritionAnalysis{}
	var err error

	if result.FoodDescription, err = requireString(raw, "food_description"); err != nil {
		return nil, err
	}
	if result.EstimatedServing, err = requireString(raw, "estimated_serving"); err != nil {
		return nil, err
	}
	if result.FoodCategory, err = requireEnum(raw, "food_category", foodCategories); err != nil {
		return nil, err
	}
	if result.Calories, err = requireNumber(raw, "calories"); err != nil {
		return nil, err
	}
	if result.Protein, err = requireNumber(raw, "protein"); err != nil {
		return nil, err
	}
	if result.Carbs, err = requireNumber(raw, "carbs"); err != nil {
		return nil, err
	}
	if result.Fat, err = requireNumber(raw, "fat"); err != nil {
		return nil, err
	}
	if result.Confidence, err = requireEnum(raw, "confidence", confidenceLevels); err != nil {
		return nil, err
	}

	return result, nil
}

func requireString(raw map[string]json.RawMessage, field string) (string, error) {
	value, ok := raw[field]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrInvalidResponse, field)
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%w: field %q is not a string", ErrInvalidResponse, field)
	}
	if s == "" {
		return "", fmt.Errorf("%w: field %q is empty", ErrInvalidResponse, field)
	}
	return s, nil
}

func requireNumber(raw map[string]json.RawMessage, field string) (float64, error) {
	value, ok := raw[field]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrInvalidResponse, field)
	}
	var n float64
	if err := json.Unmarshal(value, &n); err != nil {
		return 0, fmt.Errorf("%w: field %q is not a number", ErrInvalidResponse, field)
	}
	return n, nil
}

func requireEnum(raw map[string]json.RawMessage, field string, allowed []string) (string, error) {
	s, err := requireString(raw, field)
	if err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if s == candidate {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: field %q has value %q outside %v", ErrInvalidResponse, field, s, allowed)
}
