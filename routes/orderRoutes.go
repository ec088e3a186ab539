package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/controllers"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders")
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/:orderId", controllers.GetOrderById)
		orders.POST("", controllers.CreateOrder)
		orders.PUT("/:orderId", controllers.UpdateOrder)
		orders.DELETE("/:orderId", controllers.DeleteOrder)
	}
}
