package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormPurchaseItemStore struct {
	DB *gorm.DB
}

func NewPurchaseItemStore(db *gorm.DB) *GormPurchaseItemStore {
	return &GormPurchaseItemStore{DB: db}
}

func (s *GormPurchaseItemStore) FindByID(purchaseItemID int) (*models.PurchaseItem, error) {
	var item models.PurchaseItem
	if err := s.DB.First(&item, purchaseItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormPurchaseItemStore) FindByOrderID(purchaseOrderID int) ([]models.PurchaseItem, error) {
	var items []models.PurchaseItem
	if err := s.DB.Where("purchase_order_id = ?", purchaseOrderID).
		Order("purchase_item_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormPurchaseItemStore) Add(item *models.PurchaseItem) error {
	return s.DB.Create(item).Error
}

func (s *GormPurchaseItemStore) Update(item *models.PurchaseItem) (bool, error) {
	tx := s.DB.Model(&models.PurchaseItem{}).
		Where("purchase_item_id = ?", item.PurchaseItemID).
		Updates(map[string]any{
			"purchase_order_id": item.PurchaseOrderID,
			"item_id":           item.ItemID,
			"quantity":          item.Quantity,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormPurchaseItemStore) DeleteByID(purchaseItemID int) (bool, error) {
	tx := s.DB.Delete(&models.PurchaseItem{}, purchaseItemID)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormPurchaseItemStore) DeleteByOrderID(purchaseOrderID int) (bool, error) {
	tx := s.DB.Where("purchase_order_id = ?", purchaseOrderID).
		Delete(&models.PurchaseItem{})
	return tx.RowsAffected > 0, tx.Error
}
