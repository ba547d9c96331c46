package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormVendorStore struct {
	DB *gorm.DB
}

func NewVendorStore(db *gorm.DB) *GormVendorStore {
	return &GormVendorStore{DB: db}
}

func (s *GormVendorStore) FindAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.DB.Order("vendor_id ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *GormVendorStore) FindByID(vendorID int) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.DB.First(&vendor, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (s *GormVendorStore) FindByName(name string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.DB.Where("vendor_name = ?", name).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (s *GormVendorStore) Add(vendor *models.Vendor) error {
	return s.DB.Create(vendor).Error
}

func (s *GormVendorStore) Update(vendor *models.Vendor) (bool, error) {
	tx := s.DB.Model(&models.Vendor{}).Where("vendor_id = ?", vendor.VendorID).
		Select("*").Omit("vendor_id").Updates(vendor)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormVendorStore) DeleteByID(vendorID int) (bool, error) {
	tx := s.DB.Delete(&models.Vendor{}, vendorID)
	return tx.RowsAffected > 0, tx.Error
}
