package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName    string      `json:"customer_name"`
	PhoneNumber     string      `json:"phone_number"`
	ShippingAddress string      `json:"shipping_address"`
	CustomerFbID    string      `json:"customer_fb_id"`
	OrderDate       time.Time   `json:"order_date"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// TotalAmount is derived from the items on every read and never
	// stored, so it can not go stale when items are replaced.
	TotalAmount float64 `json:"total_amount" gorm:"-"`
}

type OrderItem struct {
	gorm.Model
	OrderID  uint    `json:"order_id"`
	Ref      string  `json:"ref"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ComputeTotal sums price x quantity over the items. Rounding is left
// to the display layer.
func ComputeTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RefreshTotal recomputes the derived total from the current items.
func (o *Order) RefreshTotal() {
	o.TotalAmount = ComputeTotal(o.Items)
}
