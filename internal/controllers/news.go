package controllers

import (
	"context"
	"net/url"

	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const newsEndpoint = "news.php"

type NewsController struct {
	client *gateway.Client
}

func NewNewsController(client *gateway.Client) *NewsController {
	return &NewsController{client: client}
}

func (c *NewsController) ListAll(ctx context.Context) ([]models.NewsArticle, error) {
	return gateway.Unwrap(gateway.Get[gateway.Envelope[[]models.NewsArticle]](ctx, c.client, newsEndpoint,
		url.Values{"action": {"getAll"}}))
}

func (c *NewsController) Detail(ctx context.Context, articleID int) (*models.NewsArticle, error) {

	article, err := gateway.Unwrap(gateway.Get[gateway.Envelope[models.NewsArticle]](ctx, c.client, newsEndpoint,
		url.Values{"action": {"getDetail"}, "id": {itoa(articleID)}}))
	if err != nil {
		return nil, err
	}

	return &article, nil
}
