package models

import "time"

// Article categories.
const (
	CategoryNutrition    = "NUTRITION"
	CategoryExercise     = "EXERCISE"
	CategoryMentalHealth = "MENTAL_HEALTH"
	CategorySleep        = "SLEEP"
	CategoryOther        = "OTHER"
)

func ValidArticleCategory(s string) bool {
	switch s {
	case CategoryNutrition, CategoryExercise, CategoryMentalHealth, CategorySleep, CategoryOther:
		return true
	}
	return false
}

// Article is not owned by a user: globally readable, mutable only by admins.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	PublishDate time.Time `json:"publishDate"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty"`
	ViewsCount  int       `json:"viewsCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
