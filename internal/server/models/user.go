// Package models defines the server-side domain records.
package models

import "time"

// User is the directory record for one account. It is owned by the external
// registration path; the auth core only reads it.
type User struct {
	ID           string
	Login        string
	PasswordHash string
	Roles        []string
	Active       bool
	CreatedAt    time.Time
}
