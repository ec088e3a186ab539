package services

import (
	"testing"

	"github.com/paatispantry/pantry-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validOrderInput() OrderInput {
	return OrderInput{
		OrderDate:     "2024-01-15",
		OrderTime:     "14:30:00",
		PaymentMethod: models.PaymentMethodUPI,
		Items: []models.SnapshotItem{
			{ProductID: 1, Name: "Organic Health Mix", UnitPrice: 299, Quantity: 2},
		},
	}
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func TestCreateOrderRoundTrip(t *testing.T) {
	db := openTestDB(t)

	customerID, err := UpsertCustomer(db, CustomerInput{
		Name: "Meena", Mobile: "9000000001", Email: "meena@example.com", Address: "12 Temple St",
	})
	require.NoError(t, err)

	input := validOrderInput()
	input.CustomerID = &customerID

	orderID, err := CreateOrder(db, input)
	require.NoError(t, err)
	assert.NotZero(t, orderID)

	orders, err := ListOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, orderID, got.ID)
	assert.Equal(t, 598.0, got.TotalAmount)
	assert.Equal(t, "Meena", got.CustomerName)
	assert.Equal(t, "9000000001", got.Mobile)
	assert.Equal(t, input.Items, got.Items)
}

func TestCreateOrderRecomputesTotal(t *testing.T) {
	db := openTestDB(t)

	input := validOrderInput()
	input.TotalAmount = 1 // client-supplied, must be ignored

	orderID, err := CreateOrder(db, input)
	require.NoError(t, err)

	var saved models.Order
	require.NoError(t, db.First(&saved, orderID).Error)
	assert.Equal(t, 598.0, saved.TotalAmount)
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	db := openTestDB(t)

	orderID, err := CreateOrder(db, validOrderInput())
	require.NoError(t, err)

	var saved models.Order
	require.NoError(t, db.First(&saved, orderID).Error)
	assert.Equal(t, models.OrderStatusPending, saved.Status)
	assert.Nil(t, saved.CustomerID)
}

func TestCreateOrderValidation(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name   string
		mutate func(*OrderInput)
	}{
		{"empty items", func(in *OrderInput) { in.Items = nil }},
		{"missing date", func(in *OrderInput) { in.OrderDate = "" }},
		{"malformed date", func(in *OrderInput) { in.OrderDate = "15/01/2024" }},
		{"missing time", func(in *OrderInput) { in.OrderTime = "" }},
		{"missing payment method", func(in *OrderInput) { in.PaymentMethod = "" }},
		{"unknown payment method", func(in *OrderInput) { in.PaymentMethod = "cheque" }},
		{"unknown status", func(in *OrderInput) { in.Status = "shipped" }},
		{"zero quantity", func(in *OrderInput) { in.Items[0].Quantity = 0 }},
		{"negative price", func(in *OrderInput) { in.Items[0].UnitPrice = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validOrderInput()
			tc.mutate(&input)

			_, err := CreateOrder(db, input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing persisted by any of the rejected submissions.
	assert.EqualValues(t, 0, orderCount(t, db))
}

func TestUpdateOrderStatus(t *testing.T) {
	db := openTestDB(t)

	orderID, err := CreateOrder(db, validOrderInput())
	require.NoError(t, err)

	require.NoError(t, UpdateOrderStatus(db, orderID, models.OrderStatusCompleted, ""))

	var saved models.Order
	require.NoError(t, db.First(&saved, orderID).Error)
	assert.Equal(t, models.OrderStatusCompleted, saved.Status)
	assert.Equal(t, models.PaymentMethodUPI, saved.PaymentMethod)

	require.NoError(t, UpdateOrderStatus(db, orderID, "", models.PaymentMethodCash))
	require.NoError(t, db.First(&saved, orderID).Error)
	assert.Equal(t, models.PaymentMethodCash, saved.PaymentMethod)
}

func TestUpdateOrderStatusErrors(t *testing.T) {
	db := openTestDB(t)

	err := UpdateOrderStatus(db, 999, models.OrderStatusCompleted, "")
	assert.ErrorIs(t, err, ErrNotFound)

	orderID, err := CreateOrder(db, validOrderInput())
	require.NoError(t, err)

	assert.ErrorIs(t, UpdateOrderStatus(db, orderID, "", ""), ErrValidation)
	assert.ErrorIs(t, UpdateOrderStatus(db, orderID, "shipped", ""), ErrValidation)
	assert.ErrorIs(t, UpdateOrderStatus(db, orderID, "", "cheque"), ErrValidation)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)

	var ids []uint
	for i := 0; i < 3; i++ {
		id, err := CreateOrder(db, validOrderInput())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	orders, err := ListOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[1], orders[1].ID)
	assert.Equal(t, ids[0], orders[2].ID)
}

func TestListOrdersSurvivesCustomerDeletion(t *testing.T) {
	db := openTestDB(t)

	customerID, err := UpsertCustomer(db, CustomerInput{
		Name: "Meena", Mobile: "9000000001", Email: "meena@example.com", Address: "A",
	})
	require.NoError(t, err)

	input := validOrderInput()
	input.CustomerID = &customerID
	orderID, err := CreateOrder(db, input)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Customer{}, customerID).Error)

	orders, err := ListOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Empty(t, orders[0].CustomerName)
	assert.Equal(t, input.Items, orders[0].Items)
}

func TestGetOrder(t *testing.T) {
	db := openTestDB(t)

	orderID, err := CreateOrder(db, validOrderInput())
	require.NoError(t, err)

	order, err := GetOrder(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, 598.0, order.TotalAmount)

	_, err = GetOrder(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	db := openTestDB(t)

	orderID, err := CreateOrder(db, validOrderInput())
	require.NoError(t, err)

	require.NoError(t, DeleteOrder(db, orderID))
	assert.EqualValues(t, 0, orderCount(t, db))

	assert.ErrorIs(t, DeleteOrder(db, orderID), ErrNotFound)
}
