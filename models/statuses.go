package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid status")

var (
	OrderStatuses       = []string{"Pending", "Shipped", "Delivered", "Cancelled"}
	DeliveryStatuses    = []string{"Preparing", "Shipped", "In Transit", "Out for Delivery", "Delivered"}
	ReclamationStatuses = []string{"Open", "In Progress", "Resolved", "Closed"}
)

// validateStatus checks vocabulary membership only. There is no
// transition ordering between statuses, any allowed value may follow
// any other.
func validateStatus(status string, allowed []string) error {
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return fmt.Errorf("%w: must be one of: %s", ErrInvalidStatus, strings.Join(allowed, ", "))
}

func ValidateOrderStatus(status string) error {
	return validateStatus(status, OrderStatuses)
}

func ValidateDeliveryStatus(status string) error {
	return validateStatus(status, DeliveryStatuses)
}

func ValidateReclamationStatus(status string) error {
	return validateStatus(status, ReclamationStatuses)
}
