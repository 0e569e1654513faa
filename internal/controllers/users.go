package controllers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const usersEndpoint = "users.php"

type UserController struct {
	client    *gateway.Client
	validator *validator.Validate
}

func NewUserController(client *gateway.Client) *UserController {
	return &UserController{
		client:    client,
		validator: validator.New(),
	}
}

// Register signs up a new account. The backend acknowledges with a
// free-form message, returned verbatim on success.
func (c *UserController) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {

	if err := c.validator.Struct(req); err != nil {
		return "", errors.ValidationError("Invalid registration details").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, usersEndpoint, url.Values{"action": {"register"}}, req)
	if err != nil {
		return "", err
	}

	if gateway.IsFailureText(resp.Message) {
		return "", errors.RemoteRejectedError(resp.Message)
	}

	return resp.Message, nil
}

// Login authenticates by phone and password. Logical success is decided
// by the backend's message literal, not the HTTP status.
func (c *UserController) Login(ctx context.Context, phone, password string) (*models.User, error) {

	creds := &models.Credentials{Phone: phone, Password: password}

	if err := c.validator.Struct(creds); err != nil {
		return nil, errors.ValidationError("Phone and password are required").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, usersEndpoint, url.Values{"action": {"login"}}, creds)
	if err != nil {
		return nil, err
	}

	if resp.Message != gateway.MsgLoginSuccess || resp.User == nil {
		return nil, errors.RemoteRejectedError(resp.Message)
	}

	return resp.User, nil
}

func (c *UserController) Update(ctx context.Context, req *models.UpdateUserRequest) (string, error) {

	if err := c.validator.Struct(req); err != nil {
		return "", errors.ValidationError("Invalid profile details").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, usersEndpoint, url.Values{"action": {"update"}}, req)
	if err != nil {
		return "", err
	}

	if gateway.IsFailureText(resp.Message) {
		return "", errors.RemoteRejectedError(resp.Message)
	}

	return resp.Message, nil
}

func (c *UserController) GetByPhone(ctx context.Context, phone string) (*models.User, error) {

	query := url.Values{"action": {"getUserByPhone"}, "phone": {phone}}

	resp, err := gateway.Get[gateway.ResponseMessage](ctx, c.client, usersEndpoint, query)
	if err != nil {
		return nil, err
	}

	if resp.User == nil {
		return nil, errors.NotFoundError(resp.Message)
	}

	return resp.User, nil
}

// ListAll is the admin view of every registered account. The server
// response is authoritative; no local copy of the list is kept.
func (c *UserController) ListAll(ctx context.Context) ([]models.User, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.User]](
		ctx, c.client, usersEndpoint, url.Values{"action": {"getAllUsers"}}))
}

func (c *UserController) Delete(ctx context.Context, userID int) error {

	body := map[string]int{"user_id": userID}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, usersEndpoint, url.Values{"action": {"delete"}}, body)
	if err != nil {
		return err
	}

	if !gateway.IsSuccess(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
