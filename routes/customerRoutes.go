package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/controllers"
)

func CustomerRoutes(server *gin.Engine) {
	customers := server.Group("/api/customers")
	{
		customers.GET("", controllers.GetCustomers)
		customers.GET("/:id", controllers.GetCustomer)
		customers.POST("", controllers.UpsertCustomer)
		customers.PUT("/:id", controllers.UpdateCustomer)
		customers.DELETE("/:id", controllers.DeleteCustomer)
	}
}
