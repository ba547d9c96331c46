package service

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
)

// PurchaseOrderService is the replenishment mirror of CheckoutOrderService:
// received lines increase the item's current count, and deleting an order
// takes the received stock back out before anything is removed. Purchase
// quantities are not bounded by item limits or current stock.
type PurchaseOrderService struct {
	orders  store.PurchaseOrderStore
	lines   store.PurchaseItemStore
	users   store.UserStore
	vendors store.VendorStore
	items   store.ItemStore
}

func NewPurchaseOrderService(orders store.PurchaseOrderStore, lines store.PurchaseItemStore,
	users store.UserStore, vendors store.VendorStore, items store.ItemStore) *PurchaseOrderService {
	return &PurchaseOrderService{orders: orders, lines: lines, users: users, vendors: vendors, items: items}
}

func (s *PurchaseOrderService) FindAll() ([]models.PurchaseOrder, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if err := s.enrich(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *PurchaseOrderService) FindByID(purchaseID int) (*models.PurchaseOrder, error) {
	order, err := s.orders.FindByID(purchaseID)
	if err != nil || order == nil {
		return order, err
	}
	if err := s.enrich(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *PurchaseOrderService) Add(order *models.PurchaseOrder) (*result.Result[models.PurchaseOrder], error) {
	res, err := s.validate(order)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if order.PurchaseID != 0 {
		res.AddMessage(result.Invalid, "Purchase ID cannot be set for add operation.")
		return res, nil
	}

	if err := s.orders.Add(order); err != nil {
		return nil, err
	}

	for i := range order.PurchaseItems {
		line := &order.PurchaseItems[i]
		line.PurchaseOrderID = order.PurchaseID
		if err := s.lines.Add(line); err != nil {
			return nil, err
		}

		updated, err := s.items.UpdateCurrentCount(line.ItemID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if !updated {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Failed to update item count for item ID: %d", line.ItemID))
			return res, nil
		}
	}

	res.SetPayload(*order)
	return res, nil
}

func (s *PurchaseOrderService) Update(order *models.PurchaseOrder) (*result.Result[models.PurchaseOrder], error) {
	res, err := s.validate(order)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if order.PurchaseID <= 0 {
		res.AddMessage(result.Invalid, "Purchase ID must be set for update.")
		return res, nil
	}

	updated, err := s.orders.Update(order)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Purchase order not found.")
		return res, nil
	}

	res.SetPayload(*order)
	return res, nil
}

func (s *PurchaseOrderService) DeleteByID(purchaseID int) (*result.Result[models.PurchaseOrder], error) {
	res := result.New[models.PurchaseOrder]()

	existing, err := s.orders.FindByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Purchase order ID not found.")
		return res, nil
	}

	lines, err := s.lines.FindByOrderID(purchaseID)
	if err != nil {
		return nil, err
	}

	// Received stock goes back out before the order disappears; a failed
	// reversal aborts the delete.
	for _, line := range lines {
		updated, err := s.items.UpdateCurrentCount(line.ItemID, -line.Quantity)
		if err != nil {
			return nil, err
		}
		if !updated {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Failed to update item count for item ID: %d", line.ItemID))
			return res, nil
		}
	}

	if _, err := s.lines.DeleteByOrderID(purchaseID); err != nil {
		return nil, err
	}

	deleted, err := s.orders.DeleteByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Purchase order not found.")
	}

	return res, nil
}

func (s *PurchaseOrderService) validate(order *models.PurchaseOrder) (*result.Result[models.PurchaseOrder], error) {
	res := result.New[models.PurchaseOrder]()

	if order == nil {
		res.AddMessage(result.Invalid, "Purchase order cannot be null.")
		return res, nil
	}

	if err := s.validateAdmin(res, order.AdminID); err != nil {
		return nil, err
	}
	if err := s.validateVendor(res, order.VendorID); err != nil {
		return nil, err
	}

	if order.PurchaseDate.IsZero() {
		res.AddMessage(result.Invalid, "Purchase date is required.")
	}

	seen := make(map[int]bool)
	for i := range order.PurchaseItems {
		line := &order.PurchaseItems[i]
		if seen[line.ItemID] {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Duplicate item in purchase order: Item ID %d", line.ItemID))
			continue
		}
		seen[line.ItemID] = true

		if err := s.validateLine(res, line); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *PurchaseOrderService) validateLine(res *result.Result[models.PurchaseOrder], line *models.PurchaseItem) error {
	if line.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Item ID is required.")
		return nil
	}

	if line.Quantity <= 0 {
		res.AddMessage(result.Invalid, "Quantity must be greater than zero.")
	}

	item, err := s.items.FindByID(line.ItemID)
	if err != nil {
		return err
	}
	if item == nil || !item.Enabled {
		res.AddMessage(result.NotFound,
			fmt.Sprintf("Item ID %d not found or disabled.", line.ItemID))
	}
	return nil
}

func (s *PurchaseOrderService) validateVendor(res *result.Result[models.PurchaseOrder], vendorID int) error {
	if vendorID <= 0 {
		res.AddMessage(result.Invalid, "Vendor ID is required.")
		return nil
	}

	vendor, err := s.vendors.FindByID(vendorID)
	if err != nil {
		return err
	}
	if vendor == nil || !vendor.Enabled {
		res.AddMessage(result.NotFound, "Vendor ID does not exist.")
	}
	return nil
}

func (s *PurchaseOrderService) validateAdmin(res *result.Result[models.PurchaseOrder], adminID int) error {
	if adminID <= 0 {
		res.AddMessage(result.Invalid, "Admin ID is required.")
		return nil
	}

	admin, err := s.users.FindByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil || !admin.Enabled || admin.Role != models.RoleAdmin {
		res.AddMessage(result.NotFound, "Admin ID does not exist or is disabled.")
	}
	return nil
}

func (s *PurchaseOrderService) enrich(order *models.PurchaseOrder) error {
	lines, err := s.lines.FindByOrderID(order.PurchaseID)
	if err != nil {
		return err
	}
	for i := range lines {
		item, err := s.items.FindByID(lines[i].ItemID)
		if err != nil {
			return err
		}
		lines[i].Item = item
	}
	order.PurchaseItems = lines

	if order.AdminID > 0 {
		admin, err := s.users.FindByID(order.AdminID)
		if err != nil {
			return err
		}
		order.Admin = admin
	}
	if order.VendorID > 0 {
		vendor, err := s.vendors.FindByID(order.VendorID)
		if err != nil {
			return err
		}
		order.Vendor = vendor
	}
	return nil
}
