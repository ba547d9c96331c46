package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/handlers"
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/service/token"
)

// Deps collects the wired handlers the router mounts.
type Deps struct {
	DB            *gorm.DB
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Items         *handlers.ItemHandler
	Vendors       *handlers.VendorHandler
	CheckoutOrder *handlers.CheckoutOrderHandler
	CheckoutItem  *handlers.CheckoutItemHandler
	PurchaseOrder *handlers.PurchaseOrderHandler
	PurchaseItem  *handlers.PurchaseItemHandler
	InventoryLog  *handlers.InventoryLogHandler
	Search        *handlers.SearchHandler
	Tokens        *token.Service
}

func Register(e *echo.Echo, d Deps) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/ready", func(c echo.Context) error {
		if d.DB != nil {
			sqlDB, err := d.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request().Context())
			}
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/refresh", d.Auth.Refresh)

	staff := d.Tokens.RequireRole(models.RoleAdmin, models.RoleAuthority)
	admin := d.Tokens.RequireRole(models.RoleAdmin)

	items := api.Group("/item", staff)
	items.GET("", d.Items.GetItems)
	items.GET("/enabled", d.Items.GetEnabledItems)
	items.GET("/category/:category", d.Items.GetItemsByCategory)
	items.GET("/search", d.Search.SearchItems)
	items.GET("/:id", d.Items.GetItem)
	items.POST("", d.Items.CreateItem, admin)
	items.PUT("/:id", d.Items.UpdateItem, admin)
	items.DELETE("/:id", d.Items.DeleteItem, admin)

	vendors := api.Group("/vendor", staff)
	vendors.GET("", d.Vendors.GetVendors)
	vendors.GET("/:id", d.Vendors.GetVendor)
	vendors.POST("", d.Vendors.CreateVendor, admin)
	vendors.PUT("/:id", d.Vendors.UpdateVendor, admin)
	vendors.DELETE("/:id", d.Vendors.DeleteVendor, admin)

	checkouts := api.Group("/checkout-order", staff)
	checkouts.GET("", d.CheckoutOrder.GetOrders)
	checkouts.GET("/busiest-hours", d.CheckoutOrder.GetBusiestHours)
	checkouts.GET("/:id", d.CheckoutOrder.GetOrder)
	checkouts.POST("", d.CheckoutOrder.CreateOrder)
	checkouts.PUT("/:id", d.CheckoutOrder.UpdateOrder)
	checkouts.DELETE("/:id", d.CheckoutOrder.DeleteOrder)

	checkoutItems := api.Group("/checkout-item", staff)
	checkoutItems.GET("/popular", d.CheckoutItem.GetPopularItems)
	checkoutItems.GET("/popular-categories", d.CheckoutItem.GetPopularCategories)
	checkoutItems.GET("/:id", d.CheckoutItem.GetLine)
	checkoutItems.PUT("/:id", d.CheckoutItem.UpdateLine)
	checkoutItems.DELETE("/:id", d.CheckoutItem.DeleteLine)

	purchases := api.Group("/purchase-order", admin)
	purchases.GET("", d.PurchaseOrder.GetOrders)
	purchases.GET("/:id", d.PurchaseOrder.GetOrder)
	purchases.POST("", d.PurchaseOrder.CreateOrder)
	purchases.PUT("/:id", d.PurchaseOrder.UpdateOrder)
	purchases.DELETE("/:id", d.PurchaseOrder.DeleteOrder)

	purchaseItems := api.Group("/purchase-item", admin)
	purchaseItems.GET("/:id", d.PurchaseItem.GetLine)
	purchaseItems.PUT("/:id", d.PurchaseItem.UpdateLine)
	purchaseItems.DELETE("/:id", d.PurchaseItem.DeleteLine)

	logs := api.Group("/inventory-log", staff)
	logs.GET("", d.InventoryLog.GetLogs)
	logs.GET("/item/:itemId", d.InventoryLog.GetLogsByItem)
	logs.GET("/item-name/:name", d.InventoryLog.GetLogsByItemName)
	logs.GET("/authority/:authorityId", d.InventoryLog.GetLogsByAuthority)
	logs.GET("/authority-email/:email", d.InventoryLog.GetLogsByAuthorityEmail)
	logs.GET("/:id", d.InventoryLog.GetLog)
	logs.POST("", d.InventoryLog.CreateLog)
	logs.PUT("/:id", d.InventoryLog.UpdateLog)
	logs.DELETE("/:id", d.InventoryLog.DeleteLog)

	users := api.Group("/user", admin)
	users.GET("", d.Users.GetUsers)
	users.GET("/:id", d.Users.GetUser)
	users.POST("", d.Users.CreateUser)
	users.PUT("/:id/password", d.Users.ChangePassword)
	users.PUT("/:id/enable", d.Users.EnableUser)
	users.PUT("/:id/disable", d.Users.DisableUser)
}
