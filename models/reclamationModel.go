package models

import (
	"time"

	"gorm.io/gorm"
)

type Reclamation struct {
	gorm.Model
	CustomerFbID     string    `json:"customer_fb_id"`
	OrderID          uint      `json:"order_id"`
	IssueDescription string    `json:"issue_description"`
	ReclamationDate  time.Time `json:"reclamation_date"`
	Status           string    `json:"status"`
}
