package users

import "time"

// User is a registered account. ID and CreatedAt are assigned once at
// creation. Username is unique and case-sensitive; Email is unique and
// stored lowercased. PasswordHash is opaque and never leaves the server.
type User struct {
	ID           int64
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Bio          string
	ImageURL     string
	CreatedAt    time.Time
}
