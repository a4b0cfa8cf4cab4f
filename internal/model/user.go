package model

import "time"

// User represents a row in the `users` table.  Users are created two
// ways: through the /v1/auth/register endpoint, and in bulk by the
// population grower during seeding.  Seeded users carry no password
// hash (NULL) and therefore cannot log in.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FirstName    – given name(s).
//  LastName     – family name.
//  Username     – globally unique login/handle.
//  Email        – email address derived from the username for seeded users.
//  PasswordHash – bcrypt hash of the password (nullable for seeded users).
//  Active       – whether the account is active.
//  IsAdmin      – administrative flag.
//  CreatedAt    – when the account was onboarded.  For seeded users this
//                 is the simulated date, not wall-clock time.
type User struct {
	ID           uint64    // users.id
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash *string   // users.password (nullable)
	Active       bool      // users.active
	IsAdmin      bool      // users.is_admin
	CreatedAt    time.Time // users.created_at
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
