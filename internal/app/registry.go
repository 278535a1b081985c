package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/storage"
	"go-storefront-api/internal/wishlist"
)

type registryDeps struct {
	cfg     config.Config
	storage storage.Store
	catalog *catalog.Store
	fetcher *catalog.Fetcher
	log     *zap.Logger
}

func registerModules(router *gin.Engine, deps registryDeps) {
	ctx := context.Background()

	// --- Stores ---
	cartStore := cart.NewStore(ctx, deps.storage, deps.log)
	wishlistStore := wishlist.NewStore(ctx, deps.storage, deps.log)

	// --- Services ---
	checkoutService := checkout.NewService(checkout.Deps{
		Cart:   cartStore,
		Orders: checkout.NewOrdersClient(deps.cfg.BackendBaseURL),
		Logger: deps.log,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(deps.catalog, deps.fetcher, deps.log)
	cartHandler := cart.NewHandler(cartStore, deps.catalog)
	wishlistHandler := wishlist.NewHandler(wishlistStore, deps.catalog)
	checkoutHandler := checkout.NewHandler(checkoutService, deps.log)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
