package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"

	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// SnapshotVersion is the schema version written into every item snapshot
// envelope. Bump it if the item shape ever changes; readers must keep
// decoding every version ever written.
const SnapshotVersion = 1

// Order holds the frozen checkout snapshot in Items. CustomerID is
// intentionally a bare nullable column with no foreign key constraint so
// orders survive customer deletion.
type Order struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	CustomerID    *uint          `json:"customerId"`
	OrderDate     string         `json:"orderDate" gorm:"size:10;index"`
	OrderTime     string         `json:"orderTime" gorm:"size:8"`
	PaymentMethod string         `json:"paymentMethod" gorm:"size:10"`
	TotalAmount   float64        `json:"totalAmount"`
	Status        string         `json:"status" gorm:"size:10;default:pending"`
	Items         datatypes.JSON `json:"items"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// SnapshotItem is one line of the immutable item snapshot captured at
// checkout. It is a copy of the product fields, never a live reference.
type SnapshotItem struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// ItemSnapshot is the envelope serialized into the orders.items column:
// {"schemaVersion":1,"items":[...]}.
type ItemSnapshot struct {
	SchemaVersion int            `json:"schemaVersion"`
	Items         []SnapshotItem `json:"items"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
