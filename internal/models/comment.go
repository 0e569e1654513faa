package models

// Comment is a product review left by a user. Username is filled in by
// the backend on reads and ignored on writes.
type Comment struct {
	ID        int    `json:"comment_id,omitempty"`
	ProductID int    `json:"product_id" validate:"required"`
	UserID    int    `json:"user_id" validate:"required"`
	Rate      int    `json:"rate" validate:"required,min=1,max=5"`
	Text      string `json:"description" validate:"required"`
	Username  string `json:"username,omitempty"`
}
