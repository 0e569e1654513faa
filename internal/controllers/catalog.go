package controllers

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
)

const (
	categoriesEndpoint    = "categories.php"
	productsEndpoint      = "products.php"
	productDetailEndpoint = "product_detail.php"
)

// CatalogController covers browsing: categories, product listings,
// search and detail lookups. All reads, all stateless.
type CatalogController struct {
	client *gateway.Client
}

func NewCatalogController(client *gateway.Client) *CatalogController {
	return &CatalogController{client: client}
}

func (c *CatalogController) Categories(ctx context.Context) ([]models.Category, error) {
	return gateway.Get[[]models.Category](ctx, c.client, categoriesEndpoint, nil)
}

func (c *CatalogController) ProductsBySubCategory(ctx context.Context, subCategoryID int) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productsEndpoint,
		url.Values{"subcategory_id": {itoa(subCategoryID)}})
}

func (c *CatalogController) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productsEndpoint, url.Values{"type": {"featured"}})
}

func (c *CatalogController) BestSellingProducts(ctx context.Context) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productsEndpoint, url.Values{"type": {"best_selling"}})
}

func (c *CatalogController) Search(ctx context.Context, query string) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productsEndpoint,
		url.Values{"action": {"search"}, "query": {query}})
}

func (c *CatalogController) AllProducts(ctx context.Context) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productsEndpoint, nil)
}

func (c *CatalogController) ProductDetail(ctx context.Context, productID int) (*models.Product, error) {

	product, err := gateway.Get[models.Product](ctx, c.client, productDetailEndpoint,
		url.Values{"product_id": {itoa(productID)}})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *CatalogController) RelatedProducts(ctx context.Context, productID int) ([]models.Product, error) {
	return gateway.Get[[]models.Product](ctx, c.client, productDetailEndpoint,
		url.Values{"related": {"true"}, "product_id": {itoa(productID)}})
}

// AdminCatalogController is the back-office side of the catalog:
// create, update and delete products.
type AdminCatalogController struct {
	client    *gateway.Client
	validator *validator.Validate
}

func NewAdminCatalogController(client *gateway.Client) *AdminCatalogController {
	return &AdminCatalogController{
		client:    client,
		validator: validator.New(),
	}
}

func (c *AdminCatalogController) AddProduct(ctx context.Context, req *models.AddProductRequest) error {

	if err := c.validator.Struct(req); err != nil {
		return errors.ValidationError("Invalid product details").WithError(err)
	}

	return c.mutate(ctx, "add", req)
}

func (c *AdminCatalogController) UpdateProduct(ctx context.Context, req *models.AddProductRequest) error {

	if err := c.validator.Struct(req); err != nil {
		return errors.ValidationError("Invalid product details").WithError(err)
	}

	return c.mutate(ctx, "update", req)
}

func (c *AdminCatalogController) DeleteProduct(ctx context.Context, productID int) error {
	return c.mutate(ctx, "delete", map[string]int{"id": productID})
}

func (c *AdminCatalogController) mutate(ctx context.Context, action string, body any) error {

	resp, err := gateway.Post[gateway.ResponseMessage](ctx, c.client, productsEndpoint,
		url.Values{"action": {action}}, body)
	if err != nil {
		return err
	}

	if !gateway.IsSuccess(resp.Message) {
		return errors.RemoteRejectedError(resp.Message)
	}

	return nil
}
