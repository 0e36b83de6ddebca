package models

import "strings"

// Session is an authenticated identity. The anonymous state is represented
// by the absence of a Session, never by a zero value.
type Session struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Name returns the display name, falling back to the email address.
func (s Session) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// Profile carries the sign-up form fields.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// FullName joins first and last name with a single space.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
