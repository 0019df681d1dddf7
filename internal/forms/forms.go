package forms

import (
	"net/url"
	"regexp"
	"strings"
)

// FieldError is one validation failure, attached to a named form field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the structured result of a failed validation. The slice order
// follows the schema's field order so re-rendered forms are stable.
type Errors []FieldError

// Has reports whether any error is attached to the given field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message attached to the given field, or "".
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// minPasswordLen matches the registration form's minimum password length.
const minPasswordLen = 6

// emailShape is a loose address check; real deliverability is out of scope.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Form field names are part of the HTTP contract and must not change.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)

// StudentData is the validated payload of the add/edit student form.
type StudentData struct {
	Name  string
	Email string
}

// RegisterData is the validated payload of the registration form.
type RegisterData struct {
	Username string
	Email    string
	Password string
}

// LoginData is the validated payload of the login form.
type LoginData struct {
	Username string
	Password string
}

// BindStudent validates the student form fields.
func BindStudent(values url.Values) (StudentData, Errors) {
	var errs Errors
	d := StudentData{
		Name:  strings.TrimSpace(values.Get(FieldName)),
		Email: strings.TrimSpace(values.Get(FieldEmail)),
	}
	if d.Name == "" {
		errs = append(errs, FieldError{FieldName, "Ce champ est requis."})
	}
	errs = appendEmailErrors(errs, d.Email)
	return d, errs
}

// BindRegister validates the registration form fields.
func BindRegister(values url.Values) (RegisterData, Errors) {
	var errs Errors
	d := RegisterData{
		Username: strings.TrimSpace(values.Get(FieldUsername)),
		Email:    strings.TrimSpace(values.Get(FieldEmail)),
		Password: values.Get(FieldPassword),
	}
	if d.Username == "" {
		errs = append(errs, FieldError{FieldUsername, "Ce champ est requis."})
	}
	errs = appendEmailErrors(errs, d.Email)
	if d.Password == "" {
		errs = append(errs, FieldError{FieldPassword, "Ce champ est requis."})
	} else if len(d.Password) < minPasswordLen {
		errs = append(errs, FieldError{FieldPassword, "Le mot de passe doit contenir au moins 6 caractères."})
	}
	return d, errs
}

// BindLogin validates the login form fields.
func BindLogin(values url.Values) (LoginData, Errors) {
	var errs Errors
	d := LoginData{
		Username: strings.TrimSpace(values.Get(FieldUsername)),
		Password: values.Get(FieldPassword),
	}
	if d.Username == "" {
		errs = append(errs, FieldError{FieldUsername, "Ce champ est requis."})
	}
	if d.Password == "" {
		errs = append(errs, FieldError{FieldPassword, "Ce champ est requis."})
	}
	return d, errs
}

func appendEmailErrors(errs Errors, email string) Errors {
	if email == "" {
		return append(errs, FieldError{FieldEmail, "Ce champ est requis."})
	}
	if !emailShape.MatchString(email) {
		return append(errs, FieldError{FieldEmail, "Adresse email invalide."})
	}
	return errs
}
