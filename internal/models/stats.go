package models

// DailyNutrition is the on-demand aggregate for a single date: macro sums
// across that date's food entries plus the water ledger total. Missing data
// in any dimension yields 0, never null.
type DailyNutrition struct {
	Date     string  `json:"date" example:"2025-01-15"`
	Calories float64 `json:"calories" example:"1850"`
	Protein  float64 `json:"protein" example:"92"`
	Carbs    float64 `json:"carbs" example:"180"`
	Fat      float64 `json:"fat" example:"65"`
	Water    int     `json:"water" example:"2100"`
}

// DailyMacros is one row of a range aggregate: macro sums for a single
// distinct logged date. Dates without entries produce no row; chart
// consumers synthesize zero-filled gaps themselves.
type DailyMacros struct {
	Date     string  `json:"date" example:"2025-01-15"`
	Calories float64 `json:"calories" example:"1850"`
	Protein  float64 `json:"protein" example:"92"`
	Carbs    float64 `json:"carbs" example:"180"`
	Fat      float64 `json:"fat" example:"65"`
}
