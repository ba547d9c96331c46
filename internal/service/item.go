package service

import (
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
	"github.com/retriever-essentials/pantry/internal/validate"
)

type ItemService struct {
	items store.ItemStore
}

func NewItemService(items store.ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) FindAll() ([]models.Item, error) {
	return s.items.FindAll()
}

func (s *ItemService) FindAllEnabled() ([]models.Item, error) {
	all, err := s.items.FindAll()
	if err != nil {
		return nil, err
	}
	enabled := make([]models.Item, 0, len(all))
	for _, item := range all {
		if item.Enabled {
			enabled = append(enabled, item)
		}
	}
	return enabled, nil
}

func (s *ItemService) FindByID(itemID int) (*models.Item, error) {
	return s.items.FindByID(itemID)
}

func (s *ItemService) FindByName(name string) (*models.Item, error) {
	return s.items.FindByName(name)
}

func (s *ItemService) FindByCategory(category string) ([]models.Item, error) {
	return s.items.FindByCategory(category)
}

func (s *ItemService) Add(item *models.Item) (*result.Result[models.Item], error) {
	res, err := s.validate(item)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if item.ItemID != 0 {
		res.AddMessage(result.Invalid, "Item ID cannot be set for `add` operation")
		return res, nil
	}

	if err := s.items.Add(item); err != nil {
		return nil, err
	}
	res.SetPayload(*item)
	return res, nil
}

func (s *ItemService) Update(item *models.Item) (*result.Result[models.Item], error) {
	res, err := s.validate(item)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if item.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Item ID must be set for `update` operation")
		return res, nil
	}

	updated, err := s.items.Update(item)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Item ID not found")
		return res, nil
	}

	res.SetPayload(*item)
	return res, nil
}

// DisableByID soft-deletes: the item stops being referenceable by new orders
// and logs but its history stays intact.
func (s *ItemService) DisableByID(itemID int) (*result.Result[models.Item], error) {
	res := result.New[models.Item]()

	disabled, err := s.items.DisableByID(itemID)
	if err != nil {
		return nil, err
	}
	if !disabled {
		res.AddMessage(result.NotFound, "Item ID not found")
	}

	return res, nil
}

func (s *ItemService) validate(item *models.Item) (*result.Result[models.Item], error) {
	res := result.New[models.Item]()

	if item == nil {
		res.AddMessage(result.Invalid, "Item cannot be null")
		return res, nil
	}

	if validate.IsNullOrBlank(item.ItemName) {
		res.AddMessage(result.Invalid, "Item name is required")
	} else if len(item.ItemName) > 55 {
		res.AddMessage(result.Invalid, "Item name must be 55 characters or less")
	}

	if validate.IsNullOrBlank(item.PicturePath) {
		res.AddMessage(result.Invalid, "Picture path cannot be null or blank")
	} else if !validate.IsValidURL(item.PicturePath) {
		res.AddMessage(result.Invalid, "Picture path must be a valid URL")
	} else if len(item.PicturePath) > 255 {
		res.AddMessage(result.Invalid, "Picture path must be 255 characters or less")
	}

	if validate.IsNullOrBlank(item.Category) {
		res.AddMessage(result.Invalid, "Category is required")
	} else if len(item.Category) > 55 {
		res.AddMessage(result.Invalid, "Category must be 55 characters or less")
	}

	if item.CurrentCount < 0 {
		res.AddMessage(result.Invalid, "Current count cannot be negative")
	}

	if item.ItemLimit < 1 {
		res.AddMessage(result.Invalid, "Item limit must be greater than or equal to 1")
	}

	if validate.IsNullOrBlank(item.PricePerUnit) {
		res.AddMessage(result.Invalid, "Price per unit is required")
	} else if !validate.IsValidPrice(item.PricePerUnit) {
		res.AddMessage(result.Invalid, "Price per unit must be a non-negative amount with at most 2 decimal places")
	}

	existing, err := s.items.FindAll()
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ItemName == item.ItemName && other.ItemID != item.ItemID {
			res.AddMessage(result.Invalid, "Duplicate items are not allowed.")
			break
		}
	}

	return res, nil
}
