package service

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
	"github.com/retriever-essentials/pantry/internal/validate"
)

// CheckoutOrderService owns the checkout side of the stock consistency rules:
// every line added to an order decrements the item's current count, and
// deleting an order puts every line's quantity back before anything is removed.
type CheckoutOrderService struct {
	orders store.CheckoutOrderStore
	lines  store.CheckoutItemStore
	items  store.ItemStore
	users  store.UserStore
}

func NewCheckoutOrderService(orders store.CheckoutOrderStore, lines store.CheckoutItemStore,
	items store.ItemStore, users store.UserStore) *CheckoutOrderService {
	return &CheckoutOrderService{orders: orders, lines: lines, items: items, users: users}
}

func (s *CheckoutOrderService) FindAll() ([]models.CheckoutOrder, error) {
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

func (s *CheckoutOrderService) FindByID(checkoutOrderID int) (*models.CheckoutOrder, error) {
	order, err := s.orders.FindByID(checkoutOrderID)
	if err != nil || order == nil {
		return order, err
	}
	if err := s.enrich(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *CheckoutOrderService) FindHourlyCheckoutSummary() ([]map[string]any, error) {
	return s.orders.FindHourlyCheckoutSummary()
}

func (s *CheckoutOrderService) Add(order *models.CheckoutOrder) (*result.Result[models.CheckoutOrder], error) {
	res, err := s.validate(order)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if order.CheckoutOrderID != 0 {
		res.AddMessage(result.Invalid, "Checkout order ID cannot be set for `add` operation.")
		return res, nil
	}

	if err := s.orders.Add(order); err != nil {
		return nil, err
	}

	// Lines are written one at a time. A stock-update failure stops the batch
	// but earlier lines stay applied; callers see the failure in the result.
	for i := range order.CheckoutItems {
		line := &order.CheckoutItems[i]
		line.CheckoutOrderID = order.CheckoutOrderID
		if err := s.lines.Add(line); err != nil {
			return nil, err
		}

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

	res.SetPayload(*order)
	return res, nil
}

// Update persists header fields only; line mutations go through
// CheckoutItemService.
func (s *CheckoutOrderService) Update(order *models.CheckoutOrder) (*result.Result[models.CheckoutOrder], error) {
	res, err := s.validate(order)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if order.CheckoutOrderID <= 0 {
		res.AddMessage(result.Invalid, "Checkout order ID must be set for update.")
		return res, nil
	}

	updated, err := s.orders.Update(order)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Checkout order not found.")
		return res, nil
	}

	res.SetPayload(*order)
	return res, nil
}

func (s *CheckoutOrderService) DeleteByID(checkoutOrderID int) (*result.Result[models.CheckoutOrder], error) {
	res := result.New[models.CheckoutOrder]()

	existing, err := s.orders.FindByID(checkoutOrderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Checkout order ID not found.")
		return res, nil
	}

	lines, err := s.lines.FindByOrderID(checkoutOrderID)
	if err != nil {
		return nil, err
	}

	// Put the stock back before removing anything. A failed restore aborts the
	// delete so the order and its lines stay intact.
	for _, line := range lines {
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

	if _, err := s.lines.DeleteByOrderID(checkoutOrderID); err != nil {
		return nil, err
	}

	deleted, err := s.orders.DeleteByID(checkoutOrderID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Checkout order not found.")
	}

	return res, nil
}

func (s *CheckoutOrderService) validate(order *models.CheckoutOrder) (*result.Result[models.CheckoutOrder], error) {
	res := result.New[models.CheckoutOrder]()

	if order == nil {
		res.AddMessage(result.Invalid, "Checkout order cannot be null.")
		return res, nil
	}

	if validate.IsNullOrBlank(order.StudentID) {
		res.AddMessage(result.Invalid, "Student ID is required.")
	} else if len(order.StudentID) > 10 {
		res.AddMessage(result.Invalid, "Student ID cannot exceed 10 characters.")
	}

	if err := s.validateAuthority(res, order.AuthorityID); err != nil {
		return nil, err
	}

	if order.CheckoutDate.IsZero() {
		res.AddMessage(result.Invalid, "Checkout date is required.")
	}

	seen := make(map[int]bool)
	for i := range order.CheckoutItems {
		line := &order.CheckoutItems[i]
		if seen[line.ItemID] {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Duplicate item in checkout order: Item ID %d", line.ItemID))
			continue
		}
		seen[line.ItemID] = true

		if err := s.validateLine(res, line); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *CheckoutOrderService) validateLine(res *result.Result[models.CheckoutOrder], line *models.CheckoutItem) error {
	if line.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Item ID is required.")
		return nil
	}

	item, err := s.items.FindByID(line.ItemID)
	if err != nil {
		return err
	}
	if item == nil || !item.Enabled {
		res.AddMessage(result.NotFound, "Item does not exist or is disabled.")
		return nil
	}

	if line.Quantity <= 0 {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Quantity for item %s must be greater than 0.", item.ItemName))
		return nil
	}

	if line.Quantity > item.CurrentCount {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Quantity for item %s exceeds available stock (%d).", item.ItemName, item.CurrentCount))
	}
	if line.Quantity > item.ItemLimit {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Quantity for item %s exceeds limit (%d).", item.ItemName, item.ItemLimit))
	}

	return nil
}

func (s *CheckoutOrderService) validateAuthority(res *result.Result[models.CheckoutOrder], authorityID int) error {
	if authorityID <= 0 {
		res.AddMessage(result.Invalid, "Authority ID is required.")
		return nil
	}

	authority, err := s.users.FindByID(authorityID)
	if err != nil {
		return err
	}
	if authority == nil || !authority.Enabled {
		res.AddMessage(result.NotFound, "Authority does not exist or is disabled.")
	}
	return nil
}

func (s *CheckoutOrderService) enrich(order *models.CheckoutOrder) error {
	lines, err := s.lines.FindByOrderID(order.CheckoutOrderID)
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
	order.CheckoutItems = lines

	if order.AuthorityID > 0 {
		authority, err := s.users.FindByID(order.AuthorityID)
		if err != nil {
			return err
		}
		order.Authority = authority
	}
	return nil
}
