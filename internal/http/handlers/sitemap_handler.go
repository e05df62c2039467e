package handlers

import (
	"encoding/xml"

	applog "bagatelle/internal/log"
	"bagatelle/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SitemapHandler struct {
	Catalog *services.CatalogService
	SiteURL string
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Serve handles GET /sitemap.xml: the catalogue root plus one entry per
// product detail page.
func (h *SitemapHandler) Serve(c *fiber.Ctx) error {
	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: h.SiteURL + "/catalogue"}},
	}

	products, err := h.Catalog.ListAll()
	if err != nil {
		// Degrade to the static entries rather than erroring the crawler.
		applog.Error(c, "sitemap.list.fail", err, nil)
	}
	for _, p := range products {
		last := p.UpdatedAt
		if last == "" {
			last = p.CreatedAt
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: h.SiteURL + "/product/" + p.ID, LastMod: last})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xml.Header + string(out))
}
