package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
