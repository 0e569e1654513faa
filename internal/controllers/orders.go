package controllers

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/petshopapp/petshop-go/internal/cart"
	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const ordersEndpoint = "orders.php"

type OrderController struct {
	client    *gateway.Client
	validator *validator.Validate
}

func NewOrderController(client *gateway.Client) *OrderController {
	return &OrderController{
		client:    client,
		validator: validator.New(),
	}
}

// Checkout submits a cart snapshot as a new order and returns the
// backend's acknowledgement message. The cart itself is untouched:
// clearing it after a successful checkout is the caller's move, so a
// failed submission never loses the items.
func (c *OrderController) Checkout(ctx context.Context, snapshot cart.Snapshot) (string, error) {

	req := &models.OrderRequest{
		Phone:     snapshot.Owner,
		CartItems: snapshot.Items,
		Total:     snapshot.TotalPrice,
	}

	if err := c.validator.Struct(req); err != nil {
		return "", errors.ValidationError("Cannot check out an empty cart").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"createOrder"}}, req)
	if err != nil {
		return "", err
	}

	if gateway.IsFailureText(resp.Message) {
		return "", errors.RemoteRejectedError(resp.Message)
	}

	return resp.Message, nil
}

func (c *OrderController) ListByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.Order]](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"getOrders"}, "phone": {phone}}))
}

func (c *OrderController) UpdateStatus(ctx context.Context, orderID int, status models.OrderStatus) error {

	body := map[string]any{"order_id": orderID, "status": status}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"updateOrderStatus"}}, body)
	if err != nil {
		return err
	}

	if gateway.IsFailureText(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

// Update rewrites an order wholesale, back-office style.
func (c *OrderController) Update(ctx context.Context, req *models.UpdateOrderRequest) error {

	if err := c.validator.Struct(req); err != nil {
		return errors.ValidationError("Invalid order update").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"updateOrder"}}, req)
	if err != nil {
		return err
	}

	if gateway.IsFailureText(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

func (c *OrderController) Delete(ctx context.Context, orderID int) error {

	body := map[string]int{"order_id": orderID}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"deleteOrder"}}, body)
	if err != nil {
		return err
	}

	if gateway.IsFailureText(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

func (c *OrderController) ListAll(ctx context.Context) ([]models.Order, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.Order]](ctx, c.client, ordersEndpoint,
		url.Values{"action": {"getAllOrders"}}))
}
