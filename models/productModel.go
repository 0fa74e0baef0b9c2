package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Reference   string  `json:"reference" gorm:"uniqueIndex;size:64"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}
