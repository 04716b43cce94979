package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMR(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 + 5
	assert.Equal(t, 1703.75, BMR(70, 30))
}

func TestTDEEActivityMultipliers(t *testing.T) {
	tests := []struct {
		level    string
		expected float64
	}{
		{"sedentary", 1703.75 * 1.2},
		{"light", 1703.75 * 1.375},
		{"moderate", 1703.75 * 1.55},
		{"active", 1703.75 * 1.725},
		{"very_active", 1703.75 * 1.9},
		{"couch_potato", 1703.75 * 1.2}, // unrecognized falls back to sedentary
		{"", 1703.75 * 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TDEE(70, 30, tt.level), 0.0001)
		})
	}
}

func TestCalorieGoal(t *testing.T) {
	// round(1703.75 * 1.55) = 2641, minus the 500 deficit
	assert.Equal(t, 2141, CalorieGoal(70, 30, "moderate", "lose_steady"))
	assert.Equal(t, 2641, CalorieGoal(70, 30, "moderate", "maintain"))
	assert.Equal(t, 1891, CalorieGoal(70, 30, "moderate", "lose_aggressive"))
	// unknown weight goal behaves like maintain
	assert.Equal(t, 2641, CalorieGoal(70, 30, "moderate", "gain"))
}

func TestWaterGoal(t *testing.T) {
	assert.Equal(t, 2450, WaterGoal(70, 30))
	// age adjustment only applies past 65
	assert.Equal(t, 2450, WaterGoal(70, 65))
	assert.Equal(t, 2695, WaterGoal(70, 70)) // round(70*35*1.1)
}
