package handlers

import (
	"strings"

	"bagatelle/internal/domain"
	"bagatelle/internal/log"
	"bagatelle/internal/services"
	"bagatelle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogueHandler struct {
	Catalog *services.CatalogService
}

// parseFilter turns the raw query params into typed criteria. String fields
// that trim to empty are absent; malformed numeric bounds fail closed with an
// input error rather than being coerced.
func parseFilter(c *fiber.Ctx) (domain.Filter, string) {
	f := domain.Filter{
		Q:        strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		Brand:    strings.TrimSpace(c.Query("brand")),
	}

	if cond := strings.TrimSpace(c.Query("condition")); cond != "" {
		v, ok := validate.Condition(cond)
		if !ok {
			return f, "Invalid condition filter"
		}
		f.Condition = v
	}

	min, ok := validate.Price(c.Query("price_min"))
	if !ok {
		return f, "Invalid minimum price"
	}
	f.PriceMin = min

	max, ok := validate.Price(c.Query("price_max"))
	if !ok {
		return f, "Invalid maximum price"
	}
	f.PriceMax = max

	// Strict literal tri-state: anything but "true"/"false" is no constraint.
	switch strings.TrimSpace(c.Query("is_available")) {
	case "true":
		v := true
		f.Available = &v
	case "false":
		v := false
		f.Available = &v
	}

	return f, ""
}

// List handles GET /catalogue. A failing read degrades to an empty listing
// instead of an error page.
func (h *CatalogueHandler) List(c *fiber.Ctx) error {
	f, errMsg := parseFilter(c)
	if errMsg != "" {
		log.Security(c, "catalogue.filter.invalid", map[string]any{"query": string(c.Request().URI().QueryString())})
		return c.Status(fiber.StatusBadRequest).Render("catalogue", fiber.Map{
			"Products": []domain.Product{}, "Count": 0, "Err": errMsg,
			"Q": f.Q, "Category": f.Category, "Brand": f.Brand, "Condition": f.Condition,
		})
	}

	products, err := h.Catalog.Search(f)
	if err != nil {
		log.Error(c, "catalogue.search.fail", err, nil)
		products = nil
	}

	return render(c, "catalogue", fiber.Map{
		"Products": products, "Count": len(products),
		"Q": f.Q, "Category": f.Category, "Brand": f.Brand, "Condition": f.Condition,
	})
}
