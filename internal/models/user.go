package models

import "time"

// RoleUser is the role assigned to every self-registered account.
const RoleUser = "user"

// User represents a registered account. Email is the unique login key.
// The password hash lives only in the users table and is never attached
// to this struct, so it cannot leak through a response body.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
