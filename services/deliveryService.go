package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeliveryUpdate carries the fields a PUT may change. The tracking
// number is assigned at creation and not editable afterwards.
type DeliveryUpdate struct {
	Status           *string         `json:"status"`
	Location         *string         `json:"location"`
	EstimatedArrival *datatypes.Date `json:"estimated_arrival"`
	DeliveredDate    *time.Time      `json:"delivered_date"`
}

type DeliveryService struct {
	store    *store.Store
	notifier *Notifier
	orders   *OrderService
}

func NewDeliveryService(st *store.Store, notifier *Notifier, orders *OrderService) *DeliveryService {
	return &DeliveryService{store: st, notifier: notifier, orders: orders}
}

func (s *DeliveryService) Create(delivery *models.Delivery) error {
	if delivery.OrderID == 0 {
		return fmt.Errorf("%w: missing required field: order_id", ErrValidation)
	}

	// Verify order exists
	if _, err := s.store.OrderByID(delivery.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d not found: %w", delivery.OrderID, err)
		}
		return err
	}

	if delivery.Status == "" {
		delivery.Status = "Preparing"
	}
	if err := models.ValidateDeliveryStatus(delivery.Status); err != nil {
		return err
	}
	if delivery.Location == "" {
		delivery.Location = "Warehouse"
	}

	if delivery.TrackingNumber != "" {
		_, err := s.store.DeliveryByTracking(delivery.TrackingNumber)
		if err == nil {
			return fmt.Errorf("%w: tracking number %q is already in use", ErrValidation, delivery.TrackingNumber)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return s.store.CreateDelivery(delivery)
}

func (s *DeliveryService) Update(id uint, update DeliveryUpdate) (*models.Delivery, error) {
	previous, err := s.store.DeliveryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery %d not found: %w", id, err)
		}
		return nil, err
	}

	delivery := *previous
	if update.Status != nil {
		if err := models.ValidateDeliveryStatus(*update.Status); err != nil {
			return nil, err
		}
		delivery.Status = *update.Status
	}
	if update.Location != nil {
		delivery.Location = *update.Location
	}
	if update.EstimatedArrival != nil {
		delivery.EstimatedArrival = *update.EstimatedArrival
	}
	if update.DeliveredDate != nil {
		delivery.DeliveredDate = update.DeliveredDate
	}

	if err := s.store.SaveDelivery(&delivery); err != nil {
		return nil, err
	}

	s.notifier.DeliveryChanged(previous, &delivery)
	s.cascadeDelivered(previous, &delivery)
	return &delivery, nil
}

// cascadeDelivered pushes a delivery's transition to Delivered onto
// the owning order, re-entering the order update path so the order's
// own notification fires. One-way only, and best-effort: a missing
// owning order is logged, the delivery update already succeeded.
func (s *DeliveryService) cascadeDelivered(previous, updated *models.Delivery) {
	if updated.Status != "Delivered" || previous.Status == "Delivered" {
		return
	}
	if _, err := s.orders.UpdateStatus(updated.OrderID, "Delivered"); err != nil {
		log.Printf("Failed to mark order %d as delivered: %v", updated.OrderID, err)
	}
}
