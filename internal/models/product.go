package models

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

type SubCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subcategories"`
}

// AddProductRequest is the admin payload for creating or updating a
// catalog entry.
type AddProductRequest struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}
