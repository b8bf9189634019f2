package domain

import "time"

// Account is a third-party credential stored in the vault. Password holds
// the sealed form, never the plaintext.
type Account struct {
	ID        string
	UserID    string
	Domain    string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// DomainCount is the number of live accounts stored for one domain.
type DomainCount struct {
	Domain string
	Count  int
}
