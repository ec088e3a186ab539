package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/initializers"
	"github.com/paatispantry/pantry-api/services"
)

// GetSalesStats reports today's, this month's and all-time sales.
// Windows default to the current local calendar day; ?date=YYYY-MM-DD
// shifts the reference date for back-dated reporting.
func GetSalesStats(ctx *gin.Context) {
	asOf := time.Now()
	if date := ctx.Query("date"); date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	stats, err := services.GetStats(initializers.DB, asOf)
	if err != nil {
		log.Println("Sales stats error:", err)
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

func GetDailySales(ctx *gin.Context) {
	rows, err := services.GetDailyBreakdown(initializers.DB)
	if err != nil {
		log.Println("Daily sales error:", err)
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
