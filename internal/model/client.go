package model

import "time"

// Client is a person or company that can hold reservations.
// Email is unique across all clients; name, email and phone are the
// only fields that may change after creation.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
