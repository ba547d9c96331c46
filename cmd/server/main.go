package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/retriever-essentials/pantry/internal/config"
	"github.com/retriever-essentials/pantry/internal/es"
	"github.com/retriever-essentials/pantry/internal/handlers"
	"github.com/retriever-essentials/pantry/internal/logging"
	"github.com/retriever-essentials/pantry/internal/mykafka"
	"github.com/retriever-essentials/pantry/internal/service"
	"github.com/retriever-essentials/pantry/internal/service/token"
	"github.com/retriever-essentials/pantry/internal/store"
	httpserver "github.com/retriever-essentials/pantry/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	refreshSecret := []byte(configuration.REFRESH_SECRET)

	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})

	esClient, err := es.NewClient(configuration)
	if err != nil {
		logger.Warn("elasticsearch unavailable, item search disabled", "error", err)
	}

	itemStore := store.NewItemStore(db)
	vendorStore := store.NewVendorStore(db)
	userStore := store.NewUserStore(db)
	checkoutOrderStore := store.NewCheckoutOrderStore(db)
	checkoutItemStore := store.NewCheckoutItemStore(db)
	purchaseOrderStore := store.NewPurchaseOrderStore(db)
	purchaseItemStore := store.NewPurchaseItemStore(db)
	inventoryLogStore := store.NewInventoryLogStore(db)

	itemSvc := service.NewItemService(itemStore)
	vendorSvc := service.NewVendorService(vendorStore)
	userSvc := service.NewAppUserService(userStore)
	checkoutOrderSvc := service.NewCheckoutOrderService(checkoutOrderStore, checkoutItemStore, itemStore, userStore)
	checkoutItemSvc := service.NewCheckoutItemService(checkoutItemStore, checkoutOrderStore, itemStore)
	purchaseOrderSvc := service.NewPurchaseOrderService(purchaseOrderStore, purchaseItemStore, userStore, vendorStore, itemStore)
	purchaseItemSvc := service.NewPurchaseItemService(purchaseItemStore, purchaseOrderStore, itemStore)
	inventoryLogSvc := service.NewInventoryLogService(inventoryLogStore, itemStore, userStore)

	tokens := &token.Service{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	deps := httpserver.Deps{
		DB:            db,
		Auth:          &handlers.AuthHandler{Users: userSvc, Tokens: tokens, Producer: prod},
		Users:         &handlers.UserHandler{Users: userSvc},
		Items:         &handlers.ItemHandler{Items: itemSvc, Producer: prod},
		Vendors:       &handlers.VendorHandler{Vendors: vendorSvc},
		CheckoutOrder: &handlers.CheckoutOrderHandler{Orders: checkoutOrderSvc, Producer: prod},
		CheckoutItem:  &handlers.CheckoutItemHandler{Lines: checkoutItemSvc},
		PurchaseOrder: &handlers.PurchaseOrderHandler{Orders: purchaseOrderSvc, Producer: prod},
		PurchaseItem:  &handlers.PurchaseItemHandler{Lines: purchaseItemSvc},
		InventoryLog:  &handlers.InventoryLogHandler{Logs: inventoryLogSvc, Producer: prod},
		Search:        &handlers.SearchHandler{ES: esClient, Index: "item"},
		Tokens:        tokens,
	}

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("pantry server started", "addr", srv.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db handle error", "error", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
