package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"bagatelle/internal/domain"
	applog "bagatelle/internal/log"
	"bagatelle/internal/services"
	"bagatelle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	Uploads *services.UploadService
}

// Form handles GET /upload (admin only, guarded in routing).
func (h *UploadHandler) Form(c *fiber.Ctx) error {
	return render(c, "upload", fiber.Map{})
}

// Submit handles POST /upload: validates metadata, then runs the ingestion
// pipeline. The admin check already happened in RequireAdmin.
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.SessionUser)
	if u == nil {
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
	}

	in, errMsg := parseProductInput(c)
	if errMsg != "" {
		applog.Security(c, "upload.input.invalid", map[string]any{"reason": errMsg})
		c.Status(fiber.StatusBadRequest)
		return render(c, "upload", fiber.Map{"Err": errMsg})
	}

	main, err := c.FormFile("main_image")
	if err != nil {
		main = nil
	}
	var secondary []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		secondary = form.File["secondary_images"]
	}

	p, err := h.Uploads.Ingest(u.ID, in, main, secondary)
	if err != nil {
		if errors.Is(err, services.ErrMissingMainImage) {
			c.Status(fiber.StatusBadRequest)
			return render(c, "upload", fiber.Map{"Err": "A main image is required"})
		}
		var se *services.StageError
		msg := "Upload failed. Please retry."
		if errors.As(err, &se) {
			msg = "Upload failed (" + se.Stage + "). Please retry."
		}
		applog.Error(c, "upload.pipeline.fail", err, map[string]any{"title": in.Title})
		c.Status(fiber.StatusBadGateway)
		return render(c, "upload", fiber.Map{"Err": msg})
	}

	applog.Audit(c, "upload.product.created", map[string]any{"product_id": p.ID, "title": p.Title})
	return c.Redirect("/product/" + p.ID)
}

func parseProductInput(c *fiber.Ctx) (services.ProductInput, string) {
	in := services.ProductInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Brand:       strings.TrimSpace(c.FormValue("brand")),
		Category:    strings.TrimSpace(c.FormValue("category")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Features:    strings.TrimSpace(c.FormValue("features")),
		Location:    strings.TrimSpace(c.FormValue("location")),
		Delivery:    strings.TrimSpace(c.FormValue("delivery")),
		Quantity:    validate.Qty(c.FormValue("quantity")),
	}
	if in.Title == "" {
		return in, "Title is required"
	}
	if cond, ok := validate.Condition(c.FormValue("condition")); ok {
		in.Condition = cond
	} else {
		return in, "Condition must be new or used"
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil || price < 0 {
		return in, "Price must be a non-negative number"
	}
	in.Price = price
	return in, ""
}
