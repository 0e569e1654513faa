package models

// CartLineItem is one product entry in a cart. Name, UnitPrice and
// ImageRef are snapshots taken when the product was first added to the
// cart and are not re-synced with the catalog afterwards.
type CartLineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageRef  string  `json:"image_ref"`
	Quantity  int     `json:"quantity"`
}
