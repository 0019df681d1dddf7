package models

// Student is one directory entry: a named person with an email address.
type Student struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
