package models

import "time"

// Client is a registered customer. PasswordHash is a bcrypt hash managed by
// the auth package; the plaintext never touches storage.
type Client struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	CPF           string        `json:"cpf,omitempty"`
	Address       string        `json:"address,omitempty"`
	City          string        `json:"city,omitempty"`
	State         string        `json:"state,omitempty"`
	Interests     string        `json:"interests,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	PasswordHash  string        `json:"password_hash,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PendingUpdate *ClientUpdate `json:"pending_update,omitempty"`
}

// ClientUpdate is a self-service profile edit held apart from the
// authoritative record until staff approves or rejects it.
type ClientUpdate struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Interests   string    `json:"interests,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}
