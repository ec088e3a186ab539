package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/controllers"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/api/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)
		products.POST("", controllers.CreateProduct)
		products.PUT("/:id", controllers.UpdateProduct)
		products.DELETE("/:id", controllers.DeleteProduct)
		products.POST("/:id/image", controllers.UploadProductImage)
	}
}
