package domain

import "time"

// User is a registered vault user. IsAuthenticated flips to true once, when
// the user confirms their email address.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string // bcrypt
	IsAuthenticated bool
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PublicUser is the projection of a user that may leave the service.
type PublicUser struct {
	ID    string
	Name  string
	Role  Role
	Email string
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role, Email: u.Email}
}

// UserRef is the minimal reference used in workspace listings.
type UserRef struct {
	ID   string
	Name string
}

// UserSummary is a row of the admin user listing.
type UserSummary struct {
	ID              string
	Name            string
	Email           string
	IsAuthenticated bool
	AccountsCount   int
}
