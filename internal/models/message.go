package models

import "time"

// Message is a contact-form entry. ClientID is nil for anonymous visitors.
type Message struct {
	ID        int64      `json:"id"`
	ClientID  *int64     `json:"client_id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
