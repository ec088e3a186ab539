package models

import "time"

// Customer is keyed on the mobile number: at most one row per mobile,
// enforced by the unique index and the upsert in services.
type Customer struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" binding:"required"`
	Mobile    string    `json:"mobile" binding:"required" gorm:"size:20;uniqueIndex"`
	Email     string    `json:"email" binding:"required"`
	Address   string    `json:"address" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
