package models

import "time"

// Exercise types.
const (
	ExerciseCardio      = "CARDIO"
	ExerciseStrength    = "STRENGTH"
	ExerciseFlexibility = "FLEXIBILITY"
	ExerciseSports      = "SPORTS"
	ExerciseOther       = "OTHER"
)

func ValidExerciseType(s string) bool {
	switch s {
	case ExerciseCardio, ExerciseStrength, ExerciseFlexibility, ExerciseSports, ExerciseOther:
		return true
	}
	return false
}

type ExerciseRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ExerciseDate    time.Time `json:"exerciseDate"`
	ExerciseType    string    `json:"exerciseType,omitempty"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	CaloriesBurned  *float64  `json:"caloriesBurned,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
