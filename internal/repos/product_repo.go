package repos

import (
	"database/sql"
	"errors"
	"strings"

	"bagatelle/internal/domain"

	"github.com/jmoiron/sqlx"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `
    id, title, brand, price, quantity, category, condition, description,
    features, location, delivery, available, main_image_url, images_json,
    COALESCE(user_id,'') AS user_id,
    created_at, COALESCE(updated_at,'') AS updated_at`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Search builds one conjunctive query from the optional filter criteria.
// Empty fields contribute no clause; results use the collection-default
// ordering (newest first).
func (r *ProductRepo) Search(f domain.Filter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.Q != "" {
		q := "%" + strings.ToLower(f.Q) + "%"
		where += ` AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, q, q)
	}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Brand != "" {
		where += ` AND LOWER(brand) LIKE ?`
		args = append(args, "%"+strings.ToLower(f.Brand)+"%")
	}
	if f.Condition != "" {
		where += ` AND condition = ?`
		args = append(args, f.Condition)
	}
	if f.PriceMin != nil {
		where += ` AND price >= ?`
		args = append(args, *f.PriceMin)
	}
	if f.PriceMax != nil {
		where += ` AND price <= ?`
		args = append(args, *f.PriceMax)
	}
	if f.Available != nil {
		where += ` AND available = ?`
		args = append(args, *f.Available)
	}

	query := `
  SELECT` + productColumns + `
  FROM products
  WHERE ` + where + `
  ORDER BY created_at DESC`

	var out []domain.Product
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productColumns+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrProductNotFound
	}
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	// Ownerless fixtures store NULL, not an empty foreign key.
	userID := sql.NullString{String: p.UserID, Valid: p.UserID != ""}
	_, err := r.db.Exec(`
  INSERT INTO products(
    id, title, brand, price, quantity, category, condition, description,
    features, location, delivery, available, main_image_url, images_json, user_id
  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Title, p.Brand, p.Price, p.Quantity, p.Category, p.Condition,
		p.Description, p.Features, p.Location, p.Delivery, p.Available,
		p.MainImageURL, p.ImagesJSON, userID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ListAll returns every product newest-first, for the sitemap.
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT`+productColumns+` FROM products ORDER BY created_at DESC`)
	return out, err
}
