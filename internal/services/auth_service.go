package services

import (
	"errors"

	"bagatelle/internal/domain"
	"bagatelle/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

type AuthService struct {
	Users *repos.UserRepo
}

// Login verifies the password, resolves the admin flag from the admins table
// and caches it on the session row for the session's lifetime.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	admin, err := s.Users.IsAdmin(u.ID)
	if err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID, admin); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Signup(sid, email, name, password string) (*domain.User, error) {
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{ID: uuid.NewString(), Email: email, Name: name, Hash: string(h)}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	// New accounts are never admin; bind the session straight away.
	if err := s.Users.BindSession(sid, u.ID, false); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.SessionUser, error) {
	return s.Users.SessionUser(sid)
}
