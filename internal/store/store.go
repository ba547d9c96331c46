// Package store holds the persistence collaborators the services depend on.
// Every Find*ByID returns (nil, nil) when no row matches; the services treat a
// nil entity as "not found" and never see gorm.ErrRecordNotFound.
package store

import (
	"github.com/retriever-essentials/pantry/internal/models"
)

type ItemStore interface {
	FindAll() ([]models.Item, error)
	FindByID(itemID int) (*models.Item, error)
	FindByName(name string) (*models.Item, error)
	FindByCategory(category string) ([]models.Item, error)
	Add(item *models.Item) error
	Update(item *models.Item) (bool, error)
	DisableByID(itemID int) (bool, error)
	// UpdateCurrentCount applies a signed delta to current_count in a single
	// conditional UPDATE. Returns true iff a row was affected; the row is left
	// untouched when the delta would drive the count negative.
	UpdateCurrentCount(itemID, delta int) (bool, error)
}

type VendorStore interface {
	FindAll() ([]models.Vendor, error)
	FindByID(vendorID int) (*models.Vendor, error)
	FindByName(name string) (*models.Vendor, error)
	Add(vendor *models.Vendor) error
	Update(vendor *models.Vendor) (bool, error)
	DeleteByID(vendorID int) (bool, error)
}

type UserStore interface {
	FindAll() ([]models.AppUser, error)
	FindByID(appUserID int) (*models.AppUser, error)
	FindByEmail(email string) (*models.AppUser, error)
	Add(user *models.AppUser) error
	UpdatePassword(appUserID int, passwordHash string) (bool, error)
	EnableByID(appUserID int) (bool, error)
	DisableByID(appUserID int) (bool, error)
}

type CheckoutOrderStore interface {
	FindAll() ([]models.CheckoutOrder, error)
	FindByID(checkoutOrderID int) (*models.CheckoutOrder, error)
	Add(order *models.CheckoutOrder) error
	Update(order *models.CheckoutOrder) (bool, error)
	DeleteByID(checkoutOrderID int) (bool, error)
	FindHourlyCheckoutSummary() ([]map[string]any, error)
}

type CheckoutItemStore interface {
	FindByID(checkoutItemID int) (*models.CheckoutItem, error)
	FindByOrderID(checkoutOrderID int) ([]models.CheckoutItem, error)
	Add(item *models.CheckoutItem) error
	Update(item *models.CheckoutItem) (bool, error)
	DeleteByID(checkoutItemID int) (bool, error)
	DeleteByOrderID(checkoutOrderID int) (bool, error)
	FindPopularItems() ([]map[string]any, error)
	FindPopularCategories() ([]map[string]any, error)
}

type PurchaseOrderStore interface {
	FindAll() ([]models.PurchaseOrder, error)
	FindByID(purchaseID int) (*models.PurchaseOrder, error)
	Add(order *models.PurchaseOrder) error
	Update(order *models.PurchaseOrder) (bool, error)
	DeleteByID(purchaseID int) (bool, error)
}

type PurchaseItemStore interface {
	FindByID(purchaseItemID int) (*models.PurchaseItem, error)
	FindByOrderID(purchaseOrderID int) ([]models.PurchaseItem, error)
	Add(item *models.PurchaseItem) error
	Update(item *models.PurchaseItem) (bool, error)
	DeleteByID(purchaseItemID int) (bool, error)
	DeleteByOrderID(purchaseOrderID int) (bool, error)
}

type InventoryLogStore interface {
	FindAll() ([]models.InventoryLog, error)
	FindByID(logID int) (*models.InventoryLog, error)
	FindByItemID(itemID int) ([]models.InventoryLog, error)
	FindByAuthorityID(authorityID int) ([]models.InventoryLog, error)
	Add(log *models.InventoryLog) error
	Update(log *models.InventoryLog) (bool, error)
	DeleteByID(logID int) (bool, error)
}
