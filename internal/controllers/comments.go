package controllers

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const commentsEndpoint = "comments.php"

type CommentController struct {
	client    *gateway.Client
	validator *validator.Validate
}

func NewCommentController(client *gateway.Client) *CommentController {
	return &CommentController{
		client:    client,
		validator: validator.New(),
	}
}

func (c *CommentController) Add(ctx context.Context, comment *models.Comment) error {

	if err := c.validator.Struct(comment); err != nil {
		return errors.ValidationError("Invalid review").WithError(err)
	}

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, commentsEndpoint,
		url.Values{"action": {"add"}}, comment)
	if err != nil {
		return err
	}

	if !gateway.IsSuccess(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

func (c *CommentController) ListByProduct(ctx context.Context, productID int) ([]models.Comment, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.Comment]](ctx, c.client, commentsEndpoint,
		url.Values{"action": {"get"}, "product_id": {itoa(productID)}}))
}
