package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormCheckoutItemStore struct {
	DB *gorm.DB
}

func NewCheckoutItemStore(db *gorm.DB) *GormCheckoutItemStore {
	return &GormCheckoutItemStore{DB: db}
}

func (s *GormCheckoutItemStore) FindByID(checkoutItemID int) (*models.CheckoutItem, error) {
	var item models.CheckoutItem
	if err := s.DB.First(&item, checkoutItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormCheckoutItemStore) FindByOrderID(checkoutOrderID int) ([]models.CheckoutItem, error) {
	var items []models.CheckoutItem
	if err := s.DB.Where("checkout_order_id = ?", checkoutOrderID).
		Order("checkout_item_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormCheckoutItemStore) Add(item *models.CheckoutItem) error {
	return s.DB.Create(item).Error
}

func (s *GormCheckoutItemStore) Update(item *models.CheckoutItem) (bool, error) {
	tx := s.DB.Model(&models.CheckoutItem{}).
		Where("checkout_item_id = ?", item.CheckoutItemID).
		Updates(map[string]any{
			"checkout_order_id": item.CheckoutOrderID,
			"item_id":           item.ItemID,
			"quantity":          item.Quantity,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormCheckoutItemStore) DeleteByID(checkoutItemID int) (bool, error) {
	tx := s.DB.Delete(&models.CheckoutItem{}, checkoutItemID)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormCheckoutItemStore) DeleteByOrderID(checkoutOrderID int) (bool, error) {
	tx := s.DB.Where("checkout_order_id = ?", checkoutOrderID).
		Delete(&models.CheckoutItem{})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormCheckoutItemStore) FindPopularItems() ([]map[string]any, error) {
	var rows []map[string]any
	err := s.DB.Raw(`
		SELECT i.item_name AS item_name, SUM(ci.quantity) AS total_quantity
		FROM checkout_items ci
		JOIN items i ON i.item_id = ci.item_id
		GROUP BY i.item_id, i.item_name
		ORDER BY total_quantity DESC
		LIMIT 10`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormCheckoutItemStore) FindPopularCategories() ([]map[string]any, error) {
	var rows []map[string]any
	err := s.DB.Raw(`
		SELECT i.category AS category, SUM(ci.quantity) AS total_quantity
		FROM checkout_items ci
		JOIN items i ON i.item_id = ci.item_id
		GROUP BY i.category
		ORDER BY total_quantity DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
