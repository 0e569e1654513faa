package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/petshopapp/petshop-go/internal/cart"
	"github.com/petshopapp/petshop-go/internal/config"
	"github.com/petshopapp/petshop-go/internal/controllers"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/kv"
	"github.com/petshopapp/petshop-go/internal/models"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	action := flag.String("action", "featured", "featured | search | detail | cart | add | checkout | orders | news")
	phone := flag.String("phone", "", "owner phone number; empty runs an anonymous in-memory cart")
	query := flag.String("query", "", "search term for -action search")
	productID := flag.Int("product", 0, "product id for -action detail/add")
	quantity := flag.Int("qty", 1, "quantity for -action add")

	// MustLoad defines its own -config flag when CONFIG_PATH is unset,
	// so it has to run before the final Parse.
	cfg := config.MustLoad()
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Cart persistence: anonymous sessions stay in memory, identified
	// owners go through Redis so the cart survives restarts.
	var store kv.Store

	if *phone == "" {
		store = kv.NewMemoryStore()
	} else {
		redisClient, err := kv.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		store = kv.NewRedisStore(redisClient)
	}

	client := gateway.NewClient(cfg.Backend, logger)
	catalog := controllers.NewCatalogController(client)
	orders := controllers.NewOrderController(client)
	news := controllers.NewNewsController(client)
	basket := cart.NewStore(ctx, *phone, store, logger)

	slog.Info("petshop client initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL))

	switch *action {

	case "featured":
		products, err := catalog.FeaturedProducts(ctx)
		exitOn(err)

		for _, p := range products {
			fmt.Printf("%d\t%s\t%.2f\n", p.ID, p.Name, p.Price)
		}

	case "search":
		products, err := catalog.Search(ctx, *query)
		exitOn(err)

		for _, p := range products {
			fmt.Printf("%d\t%s\t%.2f\n", p.ID, p.Name, p.Price)
		}

	case "detail":
		product, err := catalog.ProductDetail(ctx, *productID)
		exitOn(err)

		fmt.Printf("%d\t%s\t%.2f\n%s\n", product.ID, product.Name, product.Price, product.Description)

	case "add":
		product, err := catalog.ProductDetail(ctx, *productID)
		exitOn(err)

		exitOn(basket.AddItem(ctx, models.CartLineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			ImageRef:  firstOrEmpty(product.ImageURLs),
			Quantity:  *quantity,
		}))

		fmt.Printf("cart: %d items, total %.2f\n", len(basket.Items()), basket.TotalPrice())

	case "cart":
		for _, item := range basket.Items() {
			fmt.Printf("%d\t%s\tx%d\t%.2f\n", item.ProductID, item.Name, item.Quantity, item.UnitPrice)
		}

		fmt.Printf("total: %.2f\n", basket.TotalPrice())

	case "checkout":
		message, err := orders.Checkout(ctx, basket.Snapshot())
		exitOn(err)

		// The order went through; only now does the cart get emptied.
		exitOn(basket.Clear(ctx))
		fmt.Println(message)

	case "orders":
		list, err := orders.ListByPhone(ctx, *phone)
		exitOn(err)

		for _, o := range list {
			fmt.Printf("%d\t%s\t%s\t%.2f\n", o.ID, o.OrderDate, o.Status, o.Total)
		}

	case "news":
		articles, err := news.ListAll(ctx)
		exitOn(err)

		for _, a := range articles {
			fmt.Printf("%d\t%s\t%s\n", a.ID, a.Date, a.Title)
		}

	default:
		slog.Error("Unknown action", slog.String("action", *action))
		os.Exit(2)
	}
}

func exitOn(err error) {
	if err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func firstOrEmpty(urls []string) string {
	if len(urls) == 0 {
		return ""
	}

	return urls[0]
}
