package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"bagatelle/internal/config"
	"bagatelle/internal/http/handlers"
	"bagatelle/internal/repos"
	"bagatelle/internal/services"
)

// newTestApp wires a minimal app the way cmd/bagatelle does: in-memory
// sqlite, temp media dir, csrf exempting /api, session locals middleware.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB, *repos.UserRepo) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", MediaDir: t.TempDir(), SiteURL: "http://bagatelle.test"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 20 << 20
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax",
		Next: func(c *fiber.Ctx) bool { return len(c.Path()) >= 5 && c.Path()[:5] == "/api/" },
	}))
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg, authSvc)
	app.Get("/catalogue", deps.CatalogueHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/sitemap.xml", deps.SitemapHandler.Serve)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/upload", handlers.RequireAdmin(authSvc), deps.UploadHandler.Form)
	app.Post("/upload", handlers.RequireAdmin(authSvc), deps.UploadHandler.Submit)
	app.Post("/product/delete/:id", handlers.RequireAdmin(authSvc), deps.ProductHandler.Delete)
	api := app.Group("/api")
	api.Delete("/products/:id", handlers.RequireAdmin(authSvc), deps.ProductHandler.DeleteAPI)

	return app, db, userRepo
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
