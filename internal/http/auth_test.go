package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Seeded passwords are hashed, never plaintext.
func TestPasswordsSeededAreHashed(t *testing.T) {
	_, db, _ := newTestApp(t)
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Passw0rd!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestLoginSuccessAndFailure(t *testing.T) {
	app, _, _ := newTestApp(t)

	respLogin, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respLogin, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	post := func(email, pass string) *http.Response {
		form := strings.NewReader("csrf=" + csrfTok + "&email=" + email + "&password=" + pass)
		req := httptest.NewRequest("POST", "/login", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// bad password -> 401
	if resp := post("admin@bagatelle.test", "wrongpass!"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", resp.StatusCode)
	}

	// good password -> redirect, session cookie set
	resp := post("admin@bagatelle.test", "Passw0rd!")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	if extractCookie(resp, "sid") == "" {
		t.Fatal("sid cookie not set on login")
	}
}

// Admin flag is resolved at login from the admins table.
func TestLoginResolvesAdminFlagOnce(t *testing.T) {
	app, _, userRepo := newTestApp(t)

	respLogin, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respLogin, "csrf_")

	form := strings.NewReader("csrf=" + csrfTok + "&email=admin@bagatelle.test&password=Passw0rd!")
	req := httptest.NewRequest("POST", "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing")
	}

	u, err := userRepo.SessionUser(sid)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Admin {
		t.Fatal("admin flag not cached on session at login")
	}

	// Revoking admin does not touch live sessions; the cached flag stands
	// until logout.
	if _, err := userRepo.DB.Exec(`DELETE FROM admins WHERE user_id='u-admin'`); err != nil {
		t.Fatal(err)
	}
	u, err = userRepo.SessionUser(sid)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Admin {
		t.Fatal("cached admin flag should survive revocation for the session lifetime")
	}
}
