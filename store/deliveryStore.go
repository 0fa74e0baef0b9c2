package store

import (
	"net/url"

	"github.com/ytayachi/magasin-api/models"
)

var deliveryFilters = map[string]string{
	"status":          "status",
	"location":        "location",
	"order_id":        "order_id",
	"tracking_number": "tracking_number",
}

func (s *Store) CreateDelivery(delivery *models.Delivery) error {
	return s.db.Create(delivery).Error
}

func (s *Store) Deliveries(params url.Values) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	query := applyFilter(s.db, deliveryFilters, params)
	if err := query.Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (s *Store) DeliveryByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.db.First(&delivery, id).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (s *Store) DeliveryByTracking(code string) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.db.Where("tracking_number = ?", code).First(&delivery).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (s *Store) DeliveriesByOrderIDs(orderIDs []uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if len(orderIDs) == 0 {
		return deliveries, nil
	}
	if err := s.db.Where("order_id IN ?", orderIDs).Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (s *Store) SaveDelivery(delivery *models.Delivery) error {
	return s.db.Save(delivery).Error
}

func (s *Store) DeleteDelivery(id uint) error {
	return s.db.Delete(&models.Delivery{}, id).Error
}
