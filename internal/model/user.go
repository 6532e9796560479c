package model

// User represents an application user record as stored in the
// `users` table. Usernames are matched exactly (case-sensitive);
// the column carries a binary collation so the database agrees
// with the application about what "exact" means. Passwords are
// stored only as bcrypt hashes, never in plaintext.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique username, compared byte-for-byte.
//  Email        – optional contact email (may be empty).
//  PasswordHash – bcrypt hashed password.
type User struct {
	ID           uint64 // users.id
	Username     string // users.username
	Email        string // users.email
	PasswordHash string // users.password_hash
}
