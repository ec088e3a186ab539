package controllers

import (
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/initializers"
	"github.com/paatispantry/pantry-api/models"
	"github.com/paatispantry/pantry-api/services"
	"github.com/paatispantry/pantry-api/utils"
)

func CreateOrder(ctx *gin.Context) {
	var input services.OrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := services.CreateOrder(initializers.DB, input)
	if err != nil {
		log.Println("Order creation error:", err)
		respondWithServiceError(ctx, err)
		return
	}

	// Confirmation mail is best effort, the order is already durable.
	if input.CustomerID != nil {
		var customer models.Customer
		if err := initializers.DB.First(&customer, *input.CustomerID).Error; err == nil {
			go sendOrderConfirmation(customer, orderID, input.Items)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":      orderID,
		"message": "Order created successfully",
	})
}

func sendOrderConfirmation(customer models.Customer, orderID uint, items []models.SnapshotItem) {
	data := utils.OrderEmailData{
		Name:    customer.Name,
		OrderID: orderID,
	}
	for _, item := range items {
		data.Items = append(data.Items, utils.OrderEmailItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		data.Total += item.UnitPrice * float64(item.Quantity)
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendOrderConfirmationEmail(customer.Email, data, templatePath); err != nil {
		log.Println("Error sending order confirmation email:", err)
	} else {
		log.Println("Order confirmation email sent to:", customer.Email)
	}
}

func GetOrders(ctx *gin.Context) {
	orders, err := services.ListOrders(initializers.DB)
	if err != nil {
		log.Println("Order listing error:", err)
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.GetOrder(initializers.DB, uint(orderId))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func UpdateOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var body struct {
		Status        string `json:"status"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := services.UpdateOrderStatus(initializers.DB, uint(orderId), body.Status, body.PaymentMethod); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order updated successfully", "id": orderId})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if err := services.DeleteOrder(initializers.DB, uint(orderId)); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
