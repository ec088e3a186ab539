package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/services"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// respondWithServiceError maps service errors to HTTP statuses:
// validation -> 400, not found -> 404, storage failures -> 500.
func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Paati's Pantry API ❤️.

The following are the endpoints for this API:

PRODUCTS
- GET "/api/products" - Get all products
- GET "/api/products/{id}" - Get product by ID
- POST "/api/products" - Create a product
- PUT "/api/products/{id}" - Update a product
- DELETE "/api/products/{id}" - Delete a product
- POST "/api/products/{id}/image" - Upload a product image

CUSTOMERS
- GET "/api/customers" - Get all customers
- GET "/api/customers/{id}" - Get customer by ID
- POST "/api/customers" - Create or update a customer by mobile
- PUT "/api/customers/{id}" - Update a customer
- DELETE "/api/customers/{id}" - Delete a customer

ORDERS
- GET "/api/orders" - Get all orders
- GET "/api/orders/{id}" - Get order by ID
- POST "/api/orders" - Create a new order
- PUT "/api/orders/{id}" - Update order status or payment method
- DELETE "/api/orders/{id}" - Delete an order

SALES
- GET "/api/sales/stats" - Today's, monthly and all-time sales
- GET "/api/sales/daily" - Daily sales breakdown

UPI
- POST "/api/upi/qrcode" - Generate a UPI payment QR code`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
