package models

import "time"

// Contact represents a personal emergency contact owned by a user
type Contact struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactRequest represents a create or update of an emergency contact
type ContactRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
