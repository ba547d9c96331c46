package service

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
)

// CheckoutItemService mutates single checkout lines after their order exists.
// Quantity changes carry a stock delta of oldQuantity - newQuantity, so raising
// a line's quantity takes more stock and lowering it gives stock back.
type CheckoutItemService struct {
	lines  store.CheckoutItemStore
	orders store.CheckoutOrderStore
	items  store.ItemStore
}

func NewCheckoutItemService(lines store.CheckoutItemStore, orders store.CheckoutOrderStore,
	items store.ItemStore) *CheckoutItemService {
	return &CheckoutItemService{lines: lines, orders: orders, items: items}
}

func (s *CheckoutItemService) FindByID(checkoutItemID int) (*models.CheckoutItem, error) {
	return s.lines.FindByID(checkoutItemID)
}

func (s *CheckoutItemService) FindPopularItems() ([]map[string]any, error) {
	return s.lines.FindPopularItems()
}

func (s *CheckoutItemService) FindPopularCategories() ([]map[string]any, error) {
	return s.lines.FindPopularCategories()
}

// Add is handled by CheckoutOrderService; lines only come into existence with
// their order.

func (s *CheckoutItemService) Update(line *models.CheckoutItem) (*result.Result[models.CheckoutItem], error) {
	res := result.New[models.CheckoutItem]()

	if line == nil {
		res.AddMessage(result.Invalid, "Checkout item cannot be null.")
		return res, nil
	}

	var item *models.Item
	if line.CheckoutOrderID <= 0 {
		res.AddMessage(result.Invalid, "Checkout order ID is required.")
	} else {
		order, err := s.orders.FindByID(line.CheckoutOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			res.AddMessage(result.NotFound, "Checkout order not found.")
		}
	}

	if line.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Item ID is required.")
	} else {
		var err error
		item, err = s.items.FindByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || !item.Enabled {
			res.AddMessage(result.Invalid, "Item does not exist or is disabled.")
			item = nil
		}
	}

	if line.Quantity <= 0 {
		res.AddMessage(result.Invalid, "Quantity must be greater than 0.")
	}

	if !res.IsSuccess() {
		return res, nil
	}

	if line.CheckoutItemID <= 0 {
		res.AddMessage(result.Invalid, "Checkout item ID must be set for update.")
		return res, nil
	}

	existing, err := s.lines.FindByID(line.CheckoutItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Checkout item not found.")
		return res, nil
	}

	siblings, err := s.lines.FindByOrderID(line.CheckoutOrderID)
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.ItemID == line.ItemID && sibling.CheckoutItemID != line.CheckoutItemID {
			res.AddMessage(result.Invalid, "Duplicate checkout item found.")
			return res, nil
		}
	}

	// An increase may take at most what is on the shelf plus what this line
	// already holds, and never more than the per-order limit.
	if line.Quantity > item.CurrentCount+existing.Quantity {
		res.AddMessage(result.Invalid, "Quantity exceeds available stock.")
	}
	if line.Quantity > item.ItemLimit {
		res.AddMessage(result.Invalid, "Quantity exceeds item limit.")
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if delta := existing.Quantity - line.Quantity; delta != 0 {
		updated, err := s.items.UpdateCurrentCount(line.ItemID, delta)
		if err != nil {
			return nil, err
		}
		if !updated {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Failed to update item count for item ID: %d", line.ItemID))
			return res, nil
		}
	}

	updated, err := s.lines.Update(line)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Checkout item not found.")
		return res, nil
	}

	res.SetPayload(*line)
	return res, nil
}

func (s *CheckoutItemService) DeleteByID(checkoutItemID int) (*result.Result[models.CheckoutItem], error) {
	res := result.New[models.CheckoutItem]()

	existing, err := s.lines.FindByID(checkoutItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Checkout item ID not found.")
		return res, nil
	}

	// Restore the stock first; if that fails the line stays.
	updated, err := s.items.UpdateCurrentCount(existing.ItemID, existing.Quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Failed to update item count for item ID: %d", existing.ItemID))
		return res, nil
	}

	deleted, err := s.lines.DeleteByID(checkoutItemID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Checkout item ID not found.")
	}

	return res, nil
}
