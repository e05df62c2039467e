package domain

import "encoding/json"

type Product struct {
	ID           string  `db:"id"`
	Title        string  `db:"title"`
	Brand        string  `db:"brand"`
	Price        float64 `db:"price"`
	Quantity     int     `db:"quantity"`
	Category     string  `db:"category"`
	Condition    string  `db:"condition"` // new | used
	Description  string  `db:"description"`
	Features     string  `db:"features"`
	Location     string  `db:"location"`
	Delivery     string  `db:"delivery"`
	Available    bool    `db:"available"`
	MainImageURL string  `db:"main_image_url"`
	ImagesJSON   string  `db:"images_json"`
	UserID       string  `db:"user_id"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}

// Image is one secondary product image as stored in images_json.
type Image struct {
	URL string `json:"url"`
}

// SecondaryImages decodes images_json; a blank or broken column yields nil.
func (p Product) SecondaryImages() []Image {
	if p.ImagesJSON == "" {
		return nil
	}
	var imgs []Image
	if err := json.Unmarshal([]byte(p.ImagesJSON), &imgs); err != nil {
		return nil
	}
	return imgs
}

// Filter holds the parsed catalogue filter criteria. Empty fields contribute
// no constraint; all present fields AND together.
type Filter struct {
	Q         string
	Category  string
	Brand     string
	Condition string
	PriceMin  *float64
	PriceMax  *float64
	Available *bool
}
