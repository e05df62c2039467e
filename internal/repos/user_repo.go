package repos

import (
	"bagatelle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash) VALUES(?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash)
	return err
}

// IsAdmin checks the admins table for the given user id. Called once per
// login/signup; the result lives on the session row afterwards.
func (r *UserRepo) IsAdmin(userID string) (bool, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM admins WHERE user_id=?`, userID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepo) BindSession(sid, userID string, admin bool) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,is_admin,last_seen)
                          VALUES(?,?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,is_admin=excluded.is_admin,last_seen=CURRENT_TIMESTAMP`,
		sid, userID, admin)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.SessionUser, error) {
	var u domain.SessionUser
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,s.is_admin
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,is_admin=0,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
