package services

import (
	"testing"
	"time"

	"github.com/paatispantry/pantry-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addOrderOn(t *testing.T, db *gorm.DB, date string, total float64) {
	t.Helper()
	_, err := CreateOrder(db, OrderInput{
		OrderDate:     date,
		OrderTime:     "12:00:00",
		PaymentMethod: models.PaymentMethodCash,
		Items: []models.SnapshotItem{
			{ProductID: 1, Name: "Organic Health Mix", UnitPrice: total, Quantity: 1},
		},
	})
	require.NoError(t, err)
}

func TestGetStatsEmptyLedger(t *testing.T) {
	db := openTestDB(t)

	stats, err := GetStats(db, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.Today.Orders)
	assert.Equal(t, 0.0, stats.Today.Total)
	assert.EqualValues(t, 0, stats.Monthly.Orders)
	assert.Equal(t, 0.0, stats.Monthly.Total)
	assert.EqualValues(t, 0, stats.TotalOrders)
}

func TestGetStatsWindows(t *testing.T) {
	db := openTestDB(t)

	addOrderOn(t, db, "2024-01-15", 100) // the asOf day
	addOrderOn(t, db, "2024-01-15", 150)
	addOrderOn(t, db, "2024-01-02", 50) // same month, different day
	addOrderOn(t, db, "2023-12-31", 75) // previous month

	stats, err := GetStats(db, time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.Today.Orders)
	assert.Equal(t, 250.0, stats.Today.Total)
	assert.EqualValues(t, 3, stats.Monthly.Orders)
	assert.Equal(t, 300.0, stats.Monthly.Total)
	assert.EqualValues(t, 4, stats.TotalOrders)
}

func TestGetDailyBreakdown(t *testing.T) {
	db := openTestDB(t)

	addOrderOn(t, db, "2024-01-01", 100)
	addOrderOn(t, db, "2024-01-01", 150)
	addOrderOn(t, db, "2024-01-02", 50)

	rows, err := GetDailyBreakdown(db)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, DailySales{Date: "2024-01-02", Orders: 1, Total: 50}, rows[0])
	assert.Equal(t, DailySales{Date: "2024-01-01", Orders: 2, Total: 250}, rows[1])
}

func TestGetDailyBreakdownEmpty(t *testing.T) {
	db := openTestDB(t)

	rows, err := GetDailyBreakdown(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
