package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormInventoryLogStore struct {
	DB *gorm.DB
}

func NewInventoryLogStore(db *gorm.DB) *GormInventoryLogStore {
	return &GormInventoryLogStore{DB: db}
}

func (s *GormInventoryLogStore) FindAll() ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	if err := s.DB.Order("log_id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormInventoryLogStore) FindByID(logID int) (*models.InventoryLog, error) {
	var log models.InventoryLog
	if err := s.DB.First(&log, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (s *GormInventoryLogStore) FindByItemID(itemID int) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	if err := s.DB.Where("item_id = ?", itemID).
		Order("log_id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormInventoryLogStore) FindByAuthorityID(authorityID int) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	if err := s.DB.Where("authority_id = ?", authorityID).
		Order("log_id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormInventoryLogStore) Add(log *models.InventoryLog) error {
	return s.DB.Create(log).Error
}

func (s *GormInventoryLogStore) Update(log *models.InventoryLog) (bool, error) {
	tx := s.DB.Model(&models.InventoryLog{}).
		Where("log_id = ?", log.LogID).
		Updates(map[string]any{
			"authority_id":    log.AuthorityID,
			"item_id":         log.ItemID,
			"quantity_change": log.QuantityChange,
			"reason":          log.Reason,
			"time_stamp":      log.TimeStamp,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormInventoryLogStore) DeleteByID(logID int) (bool, error) {
	tx := s.DB.Delete(&models.InventoryLog{}, logID)
	return tx.RowsAffected > 0, tx.Error
}
