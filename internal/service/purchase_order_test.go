package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
)

func purchaseFixture() (*PurchaseOrderService, *fakePurchaseOrderStore, *fakePurchaseItemStore, *fakeItemStore) {
	items := newFakeItemStore(
		models.Item{ItemID: 1, ItemName: "Rice", Category: "Grains", CurrentCount: 20, ItemLimit: 5, Enabled: true},
		models.Item{ItemID: 2, ItemName: "Lentils", Category: "Legumes", CurrentCount: 8, ItemLimit: 4, Enabled: true},
		models.Item{ItemID: 3, ItemName: "Expired Tea", Category: "Drinks", CurrentCount: 0, ItemLimit: 1, Enabled: false},
	)
	users := newFakeUserStore(
		models.AppUser{AppUserID: 1, Email: "admin@pantry.edu", Role: models.RoleAdmin, Enabled: true},
		models.AppUser{AppUserID: 2, Email: "authority@pantry.edu", Role: models.RoleAuthority, Enabled: true},
	)
	vendors := newFakeVendorStore(
		models.Vendor{VendorID: 1, VendorName: "Patel Brothers", ContactEmail: "orders@patelbros.com", Enabled: true},
		models.Vendor{VendorID: 2, VendorName: "Closed Wholesale", ContactEmail: "info@closed.com", Enabled: false},
	)
	orders := newFakePurchaseOrderStore()
	lines := newFakePurchaseItemStore()
	svc := NewPurchaseOrderService(orders, lines, users, vendors, items)
	return svc, orders, lines, items
}

func validPurchaseOrder() models.PurchaseOrder {
	return models.PurchaseOrder{
		AdminID:      1,
		VendorID:     1,
		PurchaseDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		PurchaseItems: []models.PurchaseItem{
			{ItemID: 1, Quantity: 50},
			{ItemID: 2, Quantity: 30},
		},
	}
}

func TestAddPurchaseIncrementsStockPerLine(t *testing.T) {
	svc, orders, lines, items := purchaseFixture()

	order := validPurchaseOrder()
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.NotZero(t, order.PurchaseID)

	require.Equal(t, 70, items.count(1))
	require.Equal(t, 38, items.count(2))

	stored, err := orders.FindByID(order.PurchaseID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	persisted, err := lines.FindByOrderID(order.PurchaseID)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
}

func TestAddPurchaseIgnoresItemLimit(t *testing.T) {
	svc, _, _, items := purchaseFixture()

	// Replenishment is not bounded by the per-checkout limit.
	order := validPurchaseOrder()
	order.PurchaseItems = []models.PurchaseItem{{ItemID: 2, Quantity: 500}}
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.Equal(t, 508, items.count(2))
}

func TestAddPurchaseRejectsPresetID(t *testing.T) {
	svc, _, _, items := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseID = 9
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Purchase ID cannot be set for add operation.")
	require.Equal(t, 20, items.count(1))
}

func TestAddPurchaseNonAdminUserIsRejected(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	order.AdminID = 2
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.Equal(t, result.NotFound, res.Kind())
	require.Contains(t, res.Messages(), "Admin ID does not exist or is disabled.")
}

func TestAddPurchaseDisabledVendorIsRejected(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	order.VendorID = 2
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.Equal(t, result.NotFound, res.Kind())
	require.Contains(t, res.Messages(), "Vendor ID does not exist.")
}

func TestAddPurchaseValidationMessagesAccumulate(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	res, err := svc.Add(&models.PurchaseOrder{})
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Admin ID is required.")
	require.Contains(t, res.Messages(), "Vendor ID is required.")
	require.Contains(t, res.Messages(), "Purchase date is required.")
}

func TestAddPurchaseDuplicateLinesLeaveStockUntouched(t *testing.T) {
	svc, _, lines, items := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseItems = []models.PurchaseItem{
		{ItemID: 1, Quantity: 10},
		{ItemID: 1, Quantity: 20},
	}
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Duplicate item in purchase order: Item ID 1")

	require.Equal(t, 20, items.count(1))
	persisted, err := lines.FindByOrderID(order.PurchaseID)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestAddPurchaseDisabledItemIsNotFound(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseItems = []models.PurchaseItem{{ItemID: 3, Quantity: 5}}
	res, err := svc.Add(&order)
	require.NoError(t, err)
	require.Equal(t, result.NotFound, res.Kind())
	require.Contains(t, res.Messages(), "Item ID 3 not found or disabled.")
}

func TestUpdatePurchaseRequiresID(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseItems = nil
	res, err := svc.Update(&order)
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Purchase ID must be set for update.")
}

func TestUpdatePurchaseUnknownIDIsNotFound(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseID = 44
	order.PurchaseItems = nil
	res, err := svc.Update(&order)
	require.NoError(t, err)
	require.Equal(t, result.NotFound, res.Kind())
	require.Contains(t, res.Messages(), "Purchase order not found.")
}

func TestDeletePurchaseReversesReceivedStock(t *testing.T) {
	svc, orders, lines, items := purchaseFixture()

	order := validPurchaseOrder()
	_, err := svc.Add(&order)
	require.NoError(t, err)
	require.Equal(t, 70, items.count(1))

	res, err := svc.DeleteByID(order.PurchaseID)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	require.Equal(t, 20, items.count(1))
	require.Equal(t, 8, items.count(2))

	stored, err := orders.FindByID(order.PurchaseID)
	require.NoError(t, err)
	require.Nil(t, stored)

	persisted, err := lines.FindByOrderID(order.PurchaseID)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestDeletePurchaseAbortsWhenReversalWouldGoNegative(t *testing.T) {
	svc, orders, lines, items := purchaseFixture()

	order := validPurchaseOrder()
	order.PurchaseItems = []models.PurchaseItem{{ItemID: 1, Quantity: 50}}
	_, err := svc.Add(&order)
	require.NoError(t, err)

	// The received stock has since been checked out; reversing 50 would push
	// the count below zero, so the delete must not happen.
	ok, err := items.UpdateCurrentCount(1, -65)
	require.NoError(t, err)
	require.True(t, ok)

	res, err := svc.DeleteByID(order.PurchaseID)
	require.NoError(t, err)
	require.False(t, res.IsSuccess())
	require.Contains(t, res.Messages(), "Failed to update item count for item ID: 1")

	require.Equal(t, 5, items.count(1))
	stored, err := orders.FindByID(order.PurchaseID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	persisted, err := lines.FindByOrderID(order.PurchaseID)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
}

func TestFindPurchaseByIDEnrichesLinesAdminAndVendor(t *testing.T) {
	svc, _, _, _ := purchaseFixture()

	order := validPurchaseOrder()
	_, err := svc.Add(&order)
	require.NoError(t, err)

	found, err := svc.FindByID(order.PurchaseID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.PurchaseItems, 2)
	require.NotNil(t, found.PurchaseItems[0].Item)
	require.NotNil(t, found.Admin)
	require.Equal(t, "admin@pantry.edu", found.Admin.Email)
	require.NotNil(t, found.Vendor)
	require.Equal(t, "Patel Brothers", found.Vendor.VendorName)
}
