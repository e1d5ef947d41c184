package models

import "time"

type Diary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	EntryDate time.Time `json:"entryDate"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
