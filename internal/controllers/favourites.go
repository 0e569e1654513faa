package controllers

import (
	"context"
	"net/url"

	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const favouritesEndpoint = "favourites.php"

type FavouritesController struct {
	client *gateway.Client
}

func NewFavouritesController(client *gateway.Client) *FavouritesController {
	return &FavouritesController{client: client}
}

func (c *FavouritesController) Add(ctx context.Context, userID, productID int) error {

	resp, err := gateway.Get[gateway.ResponseMessage](ctx, c.client, favouritesEndpoint,
		url.Values{"action": {"add"}, "user_id": {itoa(userID)}, "product_id": {itoa(productID)}})
	if err != nil {
		return err
	}

	if !gateway.IsSuccess(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}

func (c *FavouritesController) List(ctx context.Context, userID int) ([]models.Product, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.Product]](ctx, c.client, favouritesEndpoint,
		url.Values{"action": {"get"}, "user_id": {itoa(userID)}}))
}

func (c *FavouritesController) Remove(ctx context.Context, userID, productID int) error {

	resp, err := gateway.Get[gateway.ResponseMessage](ctx, c.client, favouritesEndpoint,
		url.Values{"action": {"remove"}, "user_id": {itoa(userID)}, "product_id": {itoa(productID)}})
	if err != nil {
		return err
	}

	if !gateway.IsSuccess(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}
