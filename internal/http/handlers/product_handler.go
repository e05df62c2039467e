package handlers

import (
	"errors"

	applog "bagatelle/internal/log"
	"bagatelle/internal/repos"
	"bagatelle/internal/services"
	"bagatelle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p, "Images": p.SecondaryImages()})
}

// Delete handles POST /product/delete/:id (admin, form flow).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, repos.ErrProductNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		applog.Error(c, "product.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete this product. Please retry."})
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.Redirect("/catalogue")
}

// DeleteAPI handles DELETE /api/products/:id (admin, JSON flow).
func (h *ProductHandler) DeleteAPI(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, repos.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "product.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(502).JSON(fiber.Map{"error": "could not delete product"})
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true, "deleted": id})
}
