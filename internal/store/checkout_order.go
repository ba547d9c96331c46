package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

type GormCheckoutOrderStore struct {
	DB *gorm.DB
}

func NewCheckoutOrderStore(db *gorm.DB) *GormCheckoutOrderStore {
	return &GormCheckoutOrderStore{DB: db}
}

func (s *GormCheckoutOrderStore) FindAll() ([]models.CheckoutOrder, error) {
	var orders []models.CheckoutOrder
	if err := s.DB.Order("checkout_order_id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormCheckoutOrderStore) FindByID(checkoutOrderID int) (*models.CheckoutOrder, error) {
	var order models.CheckoutOrder
	if err := s.DB.First(&order, checkoutOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormCheckoutOrderStore) Add(order *models.CheckoutOrder) error {
	return s.DB.Create(order).Error
}

func (s *GormCheckoutOrderStore) Update(order *models.CheckoutOrder) (bool, error) {
	tx := s.DB.Model(&models.CheckoutOrder{}).
		Where("checkout_order_id = ?", order.CheckoutOrderID).
		Updates(map[string]any{
			"student_id":    order.StudentID,
			"authority_id":  order.AuthorityID,
			"self_checkout": order.SelfCheckout,
			"checkout_date": order.CheckoutDate,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormCheckoutOrderStore) DeleteByID(checkoutOrderID int) (bool, error) {
	tx := s.DB.Delete(&models.CheckoutOrder{}, checkoutOrderID)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormCheckoutOrderStore) FindHourlyCheckoutSummary() ([]map[string]any, error) {
	var rows []map[string]any
	err := s.DB.Raw(`
		SELECT EXTRACT(DOW FROM checkout_date)  AS day,
		       EXTRACT(HOUR FROM checkout_date) AS hour,
		       COUNT(*)                         AS checkout_count
		FROM checkout_orders
		GROUP BY day, hour
		ORDER BY checkout_count DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
