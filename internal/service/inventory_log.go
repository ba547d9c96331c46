package service

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
	"github.com/retriever-essentials/pantry/internal/validate"
)

const maxReasonLength = 255

// InventoryLogService records point adjustments to item stock outside of any
// order. The quantity change is applied to the item directly on add, reversed
// on delete, and the difference applied on update.
type InventoryLogService struct {
	logs  store.InventoryLogStore
	items store.ItemStore
	users store.UserStore
}

func NewInventoryLogService(logs store.InventoryLogStore, items store.ItemStore,
	users store.UserStore) *InventoryLogService {
	return &InventoryLogService{logs: logs, items: items, users: users}
}

func (s *InventoryLogService) FindAll() ([]models.InventoryLog, error) {
	logs, err := s.logs.FindAll()
	if err != nil {
		return nil, err
	}
	return s.enrichAll(logs)
}

func (s *InventoryLogService) FindByID(logID int) (*models.InventoryLog, error) {
	log, err := s.logs.FindByID(logID)
	if err != nil || log == nil {
		return log, err
	}
	if err := s.enrich(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *InventoryLogService) FindByItemID(itemID int) ([]models.InventoryLog, error) {
	logs, err := s.logs.FindByItemID(itemID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(logs)
}

func (s *InventoryLogService) FindByAuthorityID(authorityID int) ([]models.InventoryLog, error) {
	logs, err := s.logs.FindByAuthorityID(authorityID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(logs)
}

func (s *InventoryLogService) FindByItemName(itemName string) ([]models.InventoryLog, error) {
	item, err := s.items.FindByName(itemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return []models.InventoryLog{}, nil
	}
	return s.FindByItemID(item.ItemID)
}

func (s *InventoryLogService) FindByAuthorityEmail(email string) ([]models.InventoryLog, error) {
	authority, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if authority == nil {
		return []models.InventoryLog{}, nil
	}
	return s.FindByAuthorityID(authority.AppUserID)
}

func (s *InventoryLogService) Add(log *models.InventoryLog) (*result.Result[models.InventoryLog], error) {
	res, err := s.validate(log)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if log.LogID != 0 {
		res.AddMessage(result.Invalid, "Inventory Log ID cannot be set for add operation.")
		return res, nil
	}

	if err := s.logs.Add(log); err != nil {
		return nil, err
	}

	updated, err := s.items.UpdateCurrentCount(log.ItemID, log.QuantityChange)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Failed to update item count for item ID: %d", log.ItemID))
		return res, nil
	}

	res.SetPayload(*log)
	return res, nil
}

func (s *InventoryLogService) Update(log *models.InventoryLog) (*result.Result[models.InventoryLog], error) {
	res, err := s.validate(log)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if log.LogID <= 0 {
		res.AddMessage(result.Invalid, "Inventory Log ID must be set for update.")
		return res, nil
	}

	existing, err := s.logs.FindByID(log.LogID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Inventory Log ID not found.")
		return res, nil
	}

	// The item absorbs only the difference between the old and new change.
	if delta := log.QuantityChange - existing.QuantityChange; delta != 0 {
		updated, err := s.items.UpdateCurrentCount(log.ItemID, delta)
		if err != nil {
			return nil, err
		}
		if !updated {
			res.AddMessage(result.Invalid,
				fmt.Sprintf("Failed to update item count for item ID: %d", log.ItemID))
			return res, nil
		}
	}

	updated, err := s.logs.Update(log)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Inventory Log ID not found.")
		return res, nil
	}

	res.SetPayload(*log)
	return res, nil
}

func (s *InventoryLogService) DeleteByID(logID int) (*result.Result[models.InventoryLog], error) {
	res := result.New[models.InventoryLog]()

	existing, err := s.logs.FindByID(logID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		res.AddMessage(result.NotFound, "Inventory Log ID not found.")
		return res, nil
	}

	// Undo the adjustment before removing the record; if the reversal fails
	// the log entry stays.
	updated, err := s.items.UpdateCurrentCount(existing.ItemID, -existing.QuantityChange)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Failed to update item count for item ID: %d", existing.ItemID))
		return res, nil
	}

	deleted, err := s.logs.DeleteByID(logID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Inventory Log ID not found.")
	}

	return res, nil
}

func (s *InventoryLogService) validate(log *models.InventoryLog) (*result.Result[models.InventoryLog], error) {
	res := result.New[models.InventoryLog]()

	if log == nil {
		res.AddMessage(result.Invalid, "Inventory log cannot be null.")
		return res, nil
	}

	// An absent authority is an anonymous adjustment and is allowed; a present
	// one must resolve to an enabled user.
	if log.AuthorityID != nil {
		if *log.AuthorityID <= 0 {
			res.AddMessage(result.Invalid, "Invalid authority ID.")
		} else {
			authority, err := s.users.FindByID(*log.AuthorityID)
			if err != nil {
				return nil, err
			}
			if authority == nil || !authority.Enabled {
				res.AddMessage(result.NotFound, "Authority ID does not exist or is disabled.")
			}
		}
	}

	if log.ItemID <= 0 {
		res.AddMessage(result.Invalid, "Valid item ID is required.")
	} else {
		item, err := s.items.FindByID(log.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || !item.Enabled {
			res.AddMessage(result.NotFound, "Item ID does not exist or is disabled.")
		}
	}

	if log.QuantityChange == 0 {
		res.AddMessage(result.Invalid, "Quantity change cannot be zero.")
	}

	if validate.IsNullOrBlank(log.Reason) {
		res.AddMessage(result.Invalid, "Reason for inventory change is required.")
	} else if len(log.Reason) > maxReasonLength {
		res.AddMessage(result.Invalid,
			fmt.Sprintf("Reason must not exceed %d characters.", maxReasonLength))
	}

	if log.TimeStamp.IsZero() {
		res.AddMessage(result.Invalid, "Log date is required.")
	}

	existingLogs, err := s.logs.FindAll()
	if err != nil {
		return nil, err
	}
	for _, existing := range existingLogs {
		if existing.Same(*log) && existing.LogID != log.LogID {
			res.AddMessage(result.Invalid, "Duplicate log entry detected.")
			break
		}
	}

	return res, nil
}

func (s *InventoryLogService) enrichAll(logs []models.InventoryLog) ([]models.InventoryLog, error) {
	for i := range logs {
		if err := s.enrich(&logs[i]); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

func (s *InventoryLogService) enrich(log *models.InventoryLog) error {
	if log.ItemID > 0 {
		item, err := s.items.FindByID(log.ItemID)
		if err != nil {
			return err
		}
		log.Item = item
	}
	if log.AuthorityID != nil && *log.AuthorityID > 0 {
		authority, err := s.users.FindByID(*log.AuthorityID)
		if err != nil {
			return err
		}
		log.Authority = authority
	}
	return nil
}
