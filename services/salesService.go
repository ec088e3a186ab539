package services

import (
	"time"

	"github.com/paatispantry/pantry-api/models"
	"gorm.io/gorm"
)

type WindowStats struct {
	Orders int64   `json:"orders"`
	Total  float64 `json:"total"`
}

type SalesStats struct {
	Today       WindowStats `json:"today"`
	Monthly     WindowStats `json:"monthly"`
	TotalOrders int64       `json:"totalOrders"`
}

type DailySales struct {
	Date   string  `json:"date"`
	Orders int64   `json:"orders"`
	Total  float64 `json:"total"`
}

// GetStats aggregates the order ledger around asOf: the calendar day,
// the calendar month, and the all-time order count. Totals are zero when
// no orders match, never null.
func GetStats(db *gorm.DB, asOf time.Time) (SalesStats, error) {
	var stats SalesStats
	day := asOf.Format("2006-01-02")
	month := asOf.Format("2006-01")

	err := db.Model(&models.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS total").
		Where("order_date = ?", day).
		Scan(&stats.Today).Error
	if err != nil {
		return SalesStats{}, err
	}

	err = db.Model(&models.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS total").
		Where("order_date LIKE ?", month+"%").
		Scan(&stats.Monthly).Error
	if err != nil {
		return SalesStats{}, err
	}

	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return SalesStats{}, err
	}
	return stats, nil
}

// GetDailyBreakdown returns one row per distinct order date, newest
// date first.
func GetDailyBreakdown(db *gorm.DB) ([]DailySales, error) {
	var rows []DailySales
	err := db.Model(&models.Order{}).
		Select("order_date AS date, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS total").
		Group("order_date").
		Order("order_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
