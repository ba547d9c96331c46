package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormItemStore struct {
	DB *gorm.DB
}

func NewItemStore(db *gorm.DB) *GormItemStore {
	return &GormItemStore{DB: db}
}

func (s *GormItemStore) FindAll() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Order("item_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormItemStore) FindByID(itemID int) (*models.Item, error) {
	var item models.Item
	if err := s.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormItemStore) FindByName(name string) (*models.Item, error) {
	var item models.Item
	if err := s.DB.Where("item_name = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormItemStore) FindByCategory(category string) ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Where("category = ?", category).Order("item_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormItemStore) Add(item *models.Item) error {
	return s.DB.Create(item).Error
}

func (s *GormItemStore) Update(item *models.Item) (bool, error) {
	tx := s.DB.Model(&models.Item{}).Where("item_id = ?", item.ItemID).
		Select("*").Omit("item_id").Updates(item)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormItemStore) DisableByID(itemID int) (bool, error) {
	tx := s.DB.Model(&models.Item{}).Where("item_id = ?", itemID).
		Update("enabled", false)
	return tx.RowsAffected > 0, tx.Error
}

// UpdateCurrentCount is the only stock mutation in the system. The WHERE
// clause refuses a delta that would drive current_count negative, so a false
// return means either a missing item or insufficient stock.
func (s *GormItemStore) UpdateCurrentCount(itemID, delta int) (bool, error) {
	tx := s.DB.Model(&models.Item{}).
		Where("item_id = ? AND current_count + ? >= 0", itemID, delta).
		Update("current_count", gorm.Expr("current_count + ?", delta))
	return tx.RowsAffected > 0, tx.Error
}
