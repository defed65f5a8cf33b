package models

import "database/sql"

// User is the persistence shape of an authenticated principal. GoogleID is
// null for password-only accounts; PasswordHash is empty for Google-only
// accounts.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	GoogleID     sql.NullString `db:"google_id"`
	AuditFields
}
