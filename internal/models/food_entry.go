package models

import "time"

// Meal type classification required on every food entry.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// FoodEntry is one logged meal or food item. Macro values are stored in their
// literal units (kcal and grams) with no conversion; the store does not
// validate ranges, that is a caller concern. LoggedDate is an ISO yyyy-MM-dd
// string, compared lexically in range queries.
type FoodEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID      uint      `gorm:"index;not null" json:"user_id" example:"1"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Description string    `json:"description" example:"Grilled chicken salad"`
	Quantity    float64   `json:"quantity" example:"1"`
	Unit        string    `json:"unit" example:"serving"`
	MealType    string    `json:"meal_type" example:"lunch"`
	Category    string    `json:"category,omitempty" example:"protein"`
	Calories    float64   `json:"calories" example:"420"`
	Protein     float64   `json:"protein" example:"35"`
	Carbs       float64   `json:"carbs" example:"18"`
	Fat         float64   `json:"fat" example:"22"`
	LoggedDate  string    `gorm:"index;not null" json:"logged_date" example:"2025-01-15"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodEntryPatch is the typed partial update for a food entry. Only non-nil
// fields are written; the identifier and creation timestamp are not
// updatable. An all-nil patch is a no-op.
type FoodEntryPatch struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	MealType    *string  `json:"meal_type"`
	Category    *string  `json:"category"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	LoggedDate  *string  `json:"logged_date"`
}

// Fields flattens the patch into column assignments for the update. The
// returned map only ever contains columns from this allow-list.
func (p FoodEntryPatch) Fields() map[string]interface{} {
	data := make(map[string]interface{})
	if p.Description != nil {
		data["description"] = *p.Description
	}
	if p.Quantity != nil {
		data["quantity"] = *p.Quantity
	}
	if p.Unit != nil {
		data["unit"] = *p.Unit
	}
	if p.MealType != nil {
		data["meal_type"] = *p.MealType
	}
	if p.Category != nil {
		data["category"] = *p.Category
	}
	if p.Calories != nil {
		data["calories"] = *p.Calories
	}
	if p.Protein != nil {
		data["protein"] = *p.Protein
	}
	if p.Carbs != nil {
		data["carbs"] = *p.Carbs
	}
	if p.Fat != nil {
		data["fat"] = *p.Fat
	}
	if p.LoggedDate != nil {
		data["logged_date"] = *p.LoggedDate
	}
	return data
}
