package service

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
)

// PurchaseItemService mutates single purchase lines. The stock delta runs
// opposite to checkout lines: raising a received quantity adds stock, deleting
// a line takes its quantity back out.
type PurchaseItemService struct {
	lines  store.PurchaseItemStore
	orders store.PurchaseOrderStore
	items  store.ItemStore
}

func NewPurchaseItemService(lines store.PurchaseItemStore, orders store.PurchaseOrderStore,
	items store.ItemStore) *PurchaseItemService {
	return &PurchaseItemService{lines: lines, orders: orders, items: items}
}

func (s *PurchaseItemService) FindByID(purchaseItemID int) (*models.PurchaseItem, error) {
	return s.lines.FindByID(purchaseItemID)
}

func (s *PurchaseItemService) Update(line *models.PurchaseItem) (*result.Result[models.PurchaseItem], error) {
	res := result.New[models.PurchaseItem]()

	if line == nil {
		res.AddMessage(result.Invalid, "Purchase item cannot be null.")
		return res, nil
	}

	if line.PurchaseOrderID <= 0 {
		res.AddMessage(result.Invalid, "Purchase order ID must be set.")
	} else {
		order, err := s.orders.FindByID(line.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			res.AddMessage(result.NotFound, "Purchase order not found.")
		}
	}

	if line.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Item ID must be set.")
	} else {
		item, err := s.items.FindByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || !item.Enabled {
			res.AddMessage(result.NotFound, "Item does not exist or is disabled.")
		}
	}

	if line.Quantity <= 0 {
		res.AddMessage(result.Invalid, "Quantity must be greater than zero.")
	}

	if !res.IsSuccess() {
		return res, nil
	}

	if line.PurchaseItemID <= 0 {
		res.AddMessage(result.Invalid, "Purchase item ID must be set for `update` operation.")
		return res, nil
	}

	existing, err := s.lines.FindByID(line.PurchaseItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Purchase item ID not found.")
		return res, nil
	}

	siblings, err := s.lines.FindByOrderID(line.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.ItemID == line.ItemID && sibling.PurchaseItemID != line.PurchaseItemID {
			res.AddMessage(result.Invalid, "Duplicate purchase item detected.")
			return res, nil
		}
	}

	if delta := line.Quantity - existing.Quantity; delta != 0 {
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
		res.AddMessage(result.NotFound, "Purchase item not found.")
		return res, nil
	}

	res.SetPayload(*line)
	return res, nil
}

func (s *PurchaseItemService) DeleteByID(purchaseItemID int) (*result.Result[models.PurchaseItem], error) {
	res := result.New[models.PurchaseItem]()

	existing, err := s.lines.FindByID(purchaseItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Purchase item ID not found.")
		return res, nil
	}

	// Take the received stock back out; if that fails the line stays.
	updated, err := s.items.UpdateCurrentCount(existing.ItemID, -existing.Quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Failed to update item count for item ID: %d", existing.ItemID))
		return res, nil
	}

	deleted, err := s.lines.DeleteByID(purchaseItemID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Purchase item ID not found.")
	}

	return res, nil
}
