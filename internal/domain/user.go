package domain

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
}

// SessionUser is the identity attached to a request. Admin is resolved once
// at login from the admins table and cached on the session row.
type SessionUser struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Admin bool   `db:"is_admin"`
}
