package services

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/paatispantry/pantry-api/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pantry_orders_created_total",
	Help: "Number of orders recorded in the ledger.",
})

type OrderInput struct {
	CustomerID    *uint                 `json:"customerId"`
	OrderDate     string                `json:"orderDate"`
	OrderTime     string                `json:"orderTime"`
	PaymentMethod string                `json:"paymentMethod"`
	TotalAmount   float64               `json:"totalAmount"`
	Status        string                `json:"status"`
	Items         []models.SnapshotItem `json:"items"`
}

// OrderWithCustomer is one row of the order listing: the order joined
// with whatever customer record still exists for it.
type OrderWithCustomer struct {
	ID            uint                  `json:"id"`
	CustomerID    *uint                 `json:"customerId"`
	OrderDate     string                `json:"orderDate"`
	OrderTime     string                `json:"orderTime"`
	PaymentMethod string                `json:"paymentMethod"`
	TotalAmount   float64               `json:"totalAmount"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	CustomerName  string                `json:"customerName"`
	Mobile        string                `json:"mobile"`
	Email         string                `json:"email"`
	Address       string                `json:"address"`
	Items         []models.SnapshotItem `json:"items" gorm:"-"`
	RawItems      datatypes.JSON        `json:"-" gorm:"column:items"`
}

// CreateOrder validates a checkout submission and persists it with a
// frozen item snapshot. The total is recomputed from the items; the
// client-supplied value is advisory only.
func CreateOrder(db *gorm.DB, input OrderInput) (uint, error) {
	if input.OrderDate == "" || input.OrderTime == "" || input.PaymentMethod == "" || len(input.Items) == 0 {
		return 0, fmt.Errorf("%w: order date, time, payment method and items are required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", input.OrderDate); err != nil {
		return 0, fmt.Errorf("%w: order date must be YYYY-MM-DD", ErrValidation)
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return 0, fmt.Errorf("%w: unknown payment method %q", ErrValidation, input.PaymentMethod)
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		return 0, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var total float64
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return 0, fmt.Errorf("%w: item quantity must be at least 1", ErrValidation)
		}
		if item.UnitPrice < 0 {
			return 0, fmt.Errorf("%w: item price must not be negative", ErrValidation)
		}
		total += item.UnitPrice * float64(item.Quantity)
	}
	total = math.Round(total*100) / 100

	snapshot, err := json.Marshal(models.ItemSnapshot{
		SchemaVersion: models.SnapshotVersion,
		Items:         input.Items,
	})
	if err != nil {
		return 0, err
	}

	order := models.Order{
		CustomerID:    input.CustomerID,
		OrderDate:     input.OrderDate,
		OrderTime:     input.OrderTime,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   total,
		Status:        status,
		Items:         snapshot,
	}

	if err := db.Create(&order).Error; err != nil {
		return 0, err
	}

	ordersCreated.Inc()
	return order.ID, nil
}

// UpdateOrderStatus patches status and/or payment method of an existing
// order. At least one of the two must be supplied.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status, paymentMethod string) error {
	updates := map[string]any{}
	if status != "" {
		if !models.ValidOrderStatus(status) {
			return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
		}
		updates["status"] = status
	}
	if paymentMethod != "" {
		if !models.ValidPaymentMethod(paymentMethod) {
			return fmt.Errorf("%w: unknown payment method %q", ErrValidation, paymentMethod)
		}
		updates["payment_method"] = paymentMethod
	}
	if len(updates) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	result := db.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return nil
}

// ListOrders returns all orders newest first, left joined with their
// customers so orders whose customer was deleted still appear.
func ListOrders(db *gorm.DB) ([]OrderWithCustomer, error) {
	var rows []OrderWithCustomer
	err := db.Table("orders o").
		Select("o.id, o.customer_id, o.order_date, o.order_time, o.payment_method, o.total_amount, o.status, o.items, o.created_at, c.name AS customer_name, c.mobile, c.email, c.address").
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Order("o.created_at DESC, o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		items, err := decodeSnapshot(rows[i].RawItems)
		if err != nil {
			return nil, err
		}
		rows[i].Items = items
		rows[i].RawItems = nil
	}
	return rows, nil
}

// GetOrder returns a single joined order row.
func GetOrder(db *gorm.DB, orderID uint) (*OrderWithCustomer, error) {
	var row OrderWithCustomer
	result := db.Table("orders o").
		Select("o.id, o.customer_id, o.order_date, o.order_time, o.payment_method, o.total_amount, o.status, o.items, o.created_at, c.name AS customer_name, c.mobile, c.email, c.address").
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Where("o.id = ?", orderID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	items, err := decodeSnapshot(row.RawItems)
	if err != nil {
		return nil, err
	}
	row.Items = items
	row.RawItems = nil
	return &row, nil
}

func DeleteOrder(db *gorm.DB, orderID uint) error {
	result := db.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return nil
}

func decodeSnapshot(raw datatypes.JSON) ([]models.SnapshotItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var snapshot models.ItemSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode item snapshot: %w", err)
	}
	return snapshot.Items, nil
}
