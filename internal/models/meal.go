package models

import "time"

// Meal types.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

func ValidMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type Meal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MealType      string    `json:"mealType"`
	MealDate      time.Time `json:"mealDate"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Description   string    `json:"description,omitempty"`
	Calories      *float64  `json:"calories,omitempty"`
	Protein       *float64  `json:"protein,omitempty"`
	Carbohydrates *float64  `json:"carbohydrates,omitempty"`
	Fats          *float64  `json:"fats,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
