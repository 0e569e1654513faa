package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderDetail struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID        int           `json:"order_id"`
	UserID    int           `json:"user_id"`
	Status    OrderStatus   `json:"status"`
	OrderDate string        `json:"order_date"`
	Total     float64       `json:"total"`
	Details   []OrderDetail `json:"details,omitempty"`
}

// OrderRequest is the checkout payload: the owner's phone, the cart
// snapshot items and the derived total, exactly as the cart holds them.
type OrderRequest struct {
	Phone     string         `json:"phone" validate:"required"`
	CartItems []CartLineItem `json:"cart_items" validate:"required,min=1"`
	Total     float64        `json:"total" validate:"gte=0"`
}

type UpdateOrderRequest struct {
	OrderID   int         `json:"order_id" validate:"required"`
	UserID    int         `json:"user_id" validate:"required"`
	OrderDate string      `json:"order_date" validate:"required"`
	Status    OrderStatus `json:"status" validate:"required,oneof=pending confirmed shipping delivered cancelled"`
	Total     float64     `json:"total" validate:"gte=0"`
}
