package users

import "time"

// User is the stored credential record. Created on registration, read during
// login and identity resolution, never mutated by the auth core.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
