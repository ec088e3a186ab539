package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/initializers"
	"github.com/paatispantry/pantry-api/models"
	"github.com/paatispantry/pantry-api/services"
	"gorm.io/gorm"
)

// UpsertCustomer creates a customer or, when the mobile number is
// already known, updates the existing record in place.
func UpsertCustomer(ctx *gin.Context) {
	var input services.CustomerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	id, err := services.UpsertCustomer(initializers.DB, input)
	if err != nil {
		log.Println("Customer upsert error:", err)
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":      id,
		"name":    input.Name,
		"mobile":  input.Mobile,
		"email":   input.Email,
		"address": input.Address,
	})
}

func GetCustomers(ctx *gin.Context) {
	var customers []models.Customer
	if result := initializers.DB.Order("created_at DESC").Find(&customers); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch customers", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

func GetCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	var customer models.Customer
	result := initializers.DB.First(&customer, customerId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Customer not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve customer", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

func UpdateCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	var input services.CustomerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	result := initializers.DB.Model(&models.Customer{}).
		Where("id = ?", customerId).
		Updates(map[string]any{
			"name":    input.Name,
			"mobile":  input.Mobile,
			"email":   input.Email,
			"address": input.Address,
		})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update customer", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Customer not found", nil)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Customer updated successfully", "id": customerId})
}

func DeleteCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	// Hard delete: orders keep their snapshot and show empty customer
	// fields from the left join.
	result := initializers.DB.Delete(&models.Customer{}, customerId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete customer", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Customer not found", nil)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
