package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/controllers"
)

func SalesRoutes(server *gin.Engine) {
	sales := server.Group("/api/sales")
	{
		sales.GET("/stats", controllers.GetSalesStats)
		sales.GET("/daily", controllers.GetDailySales)
	}
}
