package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormPurchaseOrderStore struct {
	DB *gorm.DB
}

func NewPurchaseOrderStore(db *gorm.DB) *GormPurchaseOrderStore {
	return &GormPurchaseOrderStore{DB: db}
}

func (s *GormPurchaseOrderStore) FindAll() ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	if err := s.DB.Order("purchase_id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormPurchaseOrderStore) FindByID(purchaseID int) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := s.DB.First(&order, purchaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormPurchaseOrderStore) Add(order *models.PurchaseOrder) error {
	return s.DB.Create(order).Error
}

func (s *GormPurchaseOrderStore) Update(order *models.PurchaseOrder) (bool, error) {
	tx := s.DB.Model(&models.PurchaseOrder{}).
		Where("purchase_id = ?", order.PurchaseID).
		Updates(map[string]any{
			"admin_id":      order.AdminID,
			"vendor_id":     order.VendorID,
			"purchase_date": order.PurchaseDate,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormPurchaseOrderStore) DeleteByID(purchaseID int) (bool, error) {
	tx := s.DB.Delete(&models.PurchaseOrder{}, purchaseID)
	return tx.RowsAffected > 0, tx.Error
}
