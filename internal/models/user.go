package models

// User is an authentication record. Registration always pairs it with a
// Student row sharing the same display name; the two tables are not linked
// by a foreign key.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}
