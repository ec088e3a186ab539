package services

import (
	"fmt"
	"strings"

	"github.com/paatispantry/pantry-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerInput struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpsertCustomer inserts a customer keyed on mobile, or updates
// name/email/address of the existing row. The write is a single
// ON CONFLICT statement over the unique mobile index, so two concurrent
// checkouts with the same new mobile can never create two rows.
func UpsertCustomer(db *gorm.DB, input CustomerInput) (uint, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Email = strings.TrimSpace(input.Email)
	input.Address = strings.TrimSpace(input.Address)

	if input.Name == "" || input.Mobile == "" || input.Email == "" || input.Address == "" {
		return 0, fmt.Errorf("%w: name, mobile, email and address are required", ErrValidation)
	}

	customer := models.Customer{
		Name:    input.Name,
		Mobile:  input.Mobile,
		Email:   input.Email,
		Address: input.Address,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mobile"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "address", "updated_at"}),
	}).Create(&customer)
	if result.Error != nil {
		return 0, result.Error
	}

	// On the update path MySQL does not report the surviving row id, so
	// read it back by the natural key.
	var saved models.Customer
	if err := db.Where("mobile = ?", input.Mobile).First(&saved).Error; err != nil {
		return 0, err
	}
	return saved.ID, nil
}
