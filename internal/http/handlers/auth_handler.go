package handlers

import (
	"errors"
	"strings"
	"time"

	"bagatelle/internal/log"
	"bagatelle/internal/services"
	"bagatelle/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	if !okEmail || !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/catalogue")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, okEmail := validate.Email(c.FormValue("email"))
	name := strings.TrimSpace(c.FormValue("name"))
	pass := c.FormValue("password")
	if !okEmail || name == "" || !validate.Password(pass) {
		log.Security(c, "auth.signup.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(400).Render("signup", fiber.Map{"Err": "Check your email, name and password (8+ characters)", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Signup(sid, email, name, pass)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(400).Render("signup", fiber.Map{"Err": "This email is already registered", "CSRFToken": c.Cookies("csrf_")})
		}
		log.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("signup", fiber.Map{"Err": "Could not create your account. Please retry.", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Redirect("/catalogue")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/catalogue")
}
