package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormUserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) FindAll() ([]models.AppUser, error) {
	var users []models.AppUser
	if err := s.DB.Order("app_user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) FindByID(appUserID int) (*models.AppUser, error) {
	var user models.AppUser
	if err := s.DB.First(&user, appUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByEmail(email string) (*models.AppUser, error) {
	var user models.AppUser
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Add(user *models.AppUser) error {
	return s.DB.Create(user).Error
}

func (s *GormUserStore) UpdatePassword(appUserID int, passwordHash string) (bool, error) {
	tx := s.DB.Model(&models.AppUser{}).Where("app_user_id = ?", appUserID).
		Update("password_hash", passwordHash)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormUserStore) EnableByID(appUserID int) (bool, error) {
	tx := s.DB.Model(&models.AppUser{}).Where("app_user_id = ?", appUserID).
		Update("enabled", true)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormUserStore) DisableByID(appUserID int) (bool, error) {
	tx := s.DB.Model(&models.AppUser{}).Where("app_user_id = ?", appUserID).
		Update("enabled", false)
	return tx.RowsAffected > 0, tx.Error
}
