package models

import "time"

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

type User struct {
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	UserName           string             `json:"userName"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	PasswordHash       string             `json:"-"`    // never serialized
	Role               string             `json:"role"` // USER | ADMIN
	Phone              string             `json:"phone,omitempty"`
	IsVerified         bool               `json:"isVerified"`
	RecentMeasurements RecentMeasurements `json:"recentMeasurements"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}
