package store

import (
	"net/url"

	"github.com/ytayachi/magasin-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderFilters = map[string]string{
	"status":         "status",
	"phone_number":   "phone_number",
	"customer_name":  "customer_name",
	"customer_fb_id": "customer_fb_id",
}

func (s *Store) CreateOrder(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return err
	}
	order.RefreshTotal()
	return nil
}

func (s *Store) Orders(params url.Values) ([]models.Order, error) {
	var orders []models.Order
	query := applyFilter(s.db.Preload("Items"), orderFilters, params)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].RefreshTotal()
	}
	return orders, nil
}

func (s *Store) OrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	order.RefreshTotal()
	return &order, nil
}

func (s *Store) OrdersByPhone(phone string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Where("phone_number = ?", phone).Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].RefreshTotal()
	}
	return orders, nil
}

// UpdateOrder persists the order's scalar fields. When replaceItems is
// set the stored line items are replaced by order.Items in the same
// transaction.
func (s *Store) UpdateOrder(order *models.Order, replaceItems bool) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return err
		}
		if !replaceItems {
			return nil
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = order.ID
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	order.RefreshTotal()
	return nil
}

func (s *Store) DeleteOrder(id uint) error {
	return s.db.Delete(&models.Order{}, id).Error
}
