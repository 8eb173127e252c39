package models

import "time"

// User is the staff principal snapshot stored in a session.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is a staff login. Expiry is fixed at creation; reads never extend it.
type Session struct {
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClientSession is a customer portal login.
type ClientSession struct {
	Client    Client    `json:"client"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}
