// Package models defines the value snapshots fetched from the learning
// platform. None of them are mutated after a fetch; every profile load
// replaces the previous snapshot wholesale.
package models

import "time"

// User is the authenticated student.
type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Matches reports whether the user is the one the identity points at.
func (u User) Matches(id Identity) bool {
	switch id.Kind {
	case IdentityByID:
		return u.ID == id.ID
	case IdentityByLogin:
		return u.Login == id.Login
	default:
		return false
	}
}
