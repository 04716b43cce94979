package openai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validPayload = `{
	"food_description": "Grilled chicken salad",
	"estimated_serving": "1 plate (350g)",
	"food_category": "protein",
	"calories": 420,
	"protein": 35,
	"carbs": 18,
	"fat": 22,
	"confidence": "high"
}`

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"bare object", validPayload, false},
		{"fenced with language tag", "```json\n" + validPayload + "\n```", false},
		{"fenced without language tag", "```\n" + validPayload + "\n```", false},
		{"leading and trailing prose", "Here is the analysis:\n" + validPayload + "\nLet me know if you need more.", false},
		{"prose only", "I cannot see any food in this image.", true},
		{"empty content", "", true},
		{"brace order inverted", "} nothing {", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonStr, err := extractJSONObject(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidResponse))
				return
			}
			assert.NoError(t, err)

			result, err := parseNutrition(jsonStr)
			assert.NoError(t, err)
			assert.Equal(t, "Grilled chicken salad", result.FoodDescription)
			assert.Equal(t, 420.0, result.Calories)
		})
	}
}

func TestParseNutritionValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"missing food_category",
			`{"food_description":"toast","estimated_serving":"1 slice","calories":80,"protein":3,"carbs":14,"fat":1,"confidence":"high"}`,
		},
		{
			"confidence outside enum",
			`{"food_description":"toast","estimated_serving":"1 slice","food_category":"grains","calories":80,"protein":3,"carbs":14,"fat":1,"confidence":"certain"}`,
		},
		{
			"food_category outside enum",
			`{"food_description":"toast","estimated_serving":"1 slice","food_category":"bread","calories":80,"protein":3,"carbs":14,"fat":1,"confidence":"high"}`,
		},
		{
			"calories as string is not coerced",
			`{"food_description":"toast","estimated_serving":"1 slice","food_category":"grains","calories":"80","protein":3,"carbs":14,"fat":1,"confidence":"high"}`,
		},
		{
			"empty description",
			`{"food_description":"","estimated_serving":"1 slice","food_category":"grains","calories":80,"protein":3,"carbs":14,"fat":1,"confidence":"high"}`,
		},
		{
			"missing macro field",
			`{"food_description":"toast","estimated_serving":"1 slice","food_category":"grains","calories":80,"protein":3,"carbs":14,"confidence":"high"}`,
		},
		{
			"not an object",
			`[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseNutrition(tt.payload)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidResponse), "expected ErrInvalidResponse, got %v", err)
		})
	}
}

func TestParseNutritionAcceptsZeroValues(t *testing.T) {
	payload := `{"food_description":"water","estimated_serving":"1 glass","food_category":"vegetables","calories":0,"protein":0,"carbs":0,"fat":0,"confidence":"low"}`
	result, err := parseNutrition(payload)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.Calories)
	assert.Equal(t, "low", result.Confidence)
}
