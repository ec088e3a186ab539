package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/controllers"
)

func PaymentRoutes(server *gin.Engine) {
	server.POST("/api/upi/qrcode", controllers.GenerateUPIQRCode)
}
