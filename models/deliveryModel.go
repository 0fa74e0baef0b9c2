package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Delivery struct {
	gorm.Model
	OrderID          uint           `json:"order_id"`
	TrackingNumber   string         `json:"tracking_number" gorm:"size:64"`
	Status           string         `json:"status"`
	Location         string         `json:"location"`
	EstimatedArrival datatypes.Date `json:"estimated_arrival"`
	DeliveredDate    *time.Time     `json:"delivered_date"`
}
