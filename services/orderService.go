package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/gorm"
)

// ErrValidation marks request errors that should surface as 400.
var ErrValidation = errors.New("validation failed")

// OrderUpdate carries the fields a PUT may change. Pointer fields
// distinguish "not provided" from a zero value.
type OrderUpdate struct {
	CustomerName    *string            `json:"customer_name"`
	PhoneNumber     *string            `json:"phone_number"`
	ShippingAddress *string            `json:"shipping_address"`
	CustomerFbID    *string            `json:"customer_fb_id"`
	Status          *string            `json:"status"`
	Items           []models.OrderItem `json:"items"`
}

type OrderService struct {
	store    *store.Store
	notifier *Notifier
}

func NewOrderService(st *store.Store, notifier *Notifier) *OrderService {
	return &OrderService{store: st, notifier: notifier}
}

// buildItems resolves each line item against the product catalog. An
// item without an explicit price gets a snapshot of the product's
// current price, which then stays fixed for the life of the order.
func (s *OrderService) buildItems(items []models.OrderItem) ([]models.OrderItem, error) {
	built := make([]models.OrderItem, len(items))
	for i, item := range items {
		if item.Ref == "" {
			return nil, fmt.Errorf("%w: item %d is missing a product ref", ErrValidation, i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %q quantity must be at least 1", ErrValidation, item.Ref)
		}

		product, err := s.store.ProductByRef(item.Ref)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product with reference %q not found: %w", item.Ref, err)
			}
			return nil, err
		}

		if item.Price == 0 {
			item.Price = product.Price
		}
		built[i] = item
	}
	return built, nil
}

func (s *OrderService) Create(order *models.Order) error {
	if order.CustomerName == "" {
		return fmt.Errorf("%w: missing required field: customer_name", ErrValidation)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: missing required field: items", ErrValidation)
	}

	if order.Status == "" {
		order.Status = "Pending"
	}
	if err := models.ValidateOrderStatus(order.Status); err != nil {
		return err
	}

	items, err := s.buildItems(order.Items)
	if err != nil {
		return err
	}
	order.Items = items

	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	return s.store.CreateOrder(order)
}

func (s *OrderService) Update(id uint, update OrderUpdate) (*models.Order, error) {
	previous, err := s.orderByID(id)
	if err != nil {
		return nil, err
	}

	order := *previous
	if update.CustomerName != nil {
		order.CustomerName = *update.CustomerName
	}
	if update.PhoneNumber != nil {
		order.PhoneNumber = *update.PhoneNumber
	}
	if update.ShippingAddress != nil {
		order.ShippingAddress = *update.ShippingAddress
	}
	if update.CustomerFbID != nil {
		order.CustomerFbID = *update.CustomerFbID
	}
	if update.Status != nil {
		if err := models.ValidateOrderStatus(*update.Status); err != nil {
			return nil, err
		}
		order.Status = *update.Status
	}

	replaceItems := len(update.Items) > 0
	if replaceItems {
		items, err := s.buildItems(update.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	if err := s.store.UpdateOrder(&order, replaceItems); err != nil {
		return nil, err
	}

	s.notifier.OrderChanged(previous, &order)
	return &order, nil
}

func (s *OrderService) orderByID(id uint) (*models.Order, error) {
	order, err := s.store.OrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d not found: %w", id, err)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus is the PATCH path: status only, validated against the
// order vocabulary.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if err := models.ValidateOrderStatus(status); err != nil {
		return nil, err
	}

	previous, err := s.orderByID(id)
	if err != nil {
		return nil, err
	}

	order := *previous
	order.Status = status
	if err := s.store.UpdateOrder(&order, false); err != nil {
		return nil, err
	}

	s.notifier.OrderChanged(previous, &order)
	return &order, nil
}
