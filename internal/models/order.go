package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	OrderNumber        string         `json:"order_number" gorm:"unique;not null"`
	TableID            uint           `json:"table_id" gorm:"not null;index"`
	Table              Table          `json:"table" gorm:"foreignKey:TableID"`
	CustomerName       string         `json:"customer_name"`
	CustomerPhone      string         `json:"customer_phone"`
	CustomerEmail      string         `json:"customer_email"`
	Items              []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal           float64        `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Tax                float64        `json:"tax" gorm:"type:decimal(12,2);default:0"`
	Discount           float64        `json:"discount" gorm:"type:decimal(12,2);default:0"`
	Total              float64        `json:"total" gorm:"type:decimal(12,2);not null"`
	Status             string         `json:"status" gorm:"default:'pending';index"`
	OrderType          string         `json:"order_type" gorm:"default:'dine_in'"` // dine_in, takeaway, delivery
	PaymentStatus      string         `json:"payment_status" gorm:"default:'pending';index"`
	PaymentMethod      string         `json:"payment_method"` // cash, card, mobile_money, bank_transfer
	DeductionStatus    string         `json:"deduction_status" gorm:"default:'pending'"`
	WaiterID           *uint          `json:"waiter_id" gorm:"index"`
	CashierID          *uint          `json:"cashier_id"`
	Notes              string         `json:"notes"`
	EstimatedPrepTime  int            `json:"estimated_prep_time" gorm:"default:30"` // minutes
	ActualPrepTime     *int           `json:"actual_prep_time"`                      // minutes
	ConfirmedAt        *time.Time     `json:"confirmed_at"`
	ReadyAt            *time.Time     `json:"ready_at"`
	ServedAt           *time.Time     `json:"served_at"`
	PaidAt             *time.Time     `json:"paid_at"`
	CancelledAt        *time.Time     `json:"cancelled_at"`
	CancellationReason string         `json:"cancellation_reason"`
	CreatedBy          *uint          `json:"created_by"`
	CreatedAt          time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderItem struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	OrderID             uint       `json:"order_id" gorm:"not null;index"`
	MenuItemID          uint       `json:"menu_item_id" gorm:"not null"`
	MenuItem            MenuItem   `json:"menu_item" gorm:"foreignKey:MenuItemID"`
	Quantity            int        `json:"quantity" gorm:"not null"`
	UnitPrice           float64    `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	TotalPrice          float64    `json:"total_price" gorm:"type:decimal(12,2);not null"`
	SpecialInstructions string     `json:"special_instructions"`
	Status              string     `json:"status" gorm:"default:'pending'"` // pending, preparing, ready, served
	PreparedAt          *time.Time `json:"prepared_at"`
	ServedAt            *time.Time `json:"served_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

const (
	ItemStatusPending   = "pending"
	ItemStatusPreparing = "preparing"
	ItemStatusReady     = "ready"
	ItemStatusServed    = "served"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

const (
	DeductionPending = "pending"
	DeductionApplied = "applied"
	DeductionPartial = "partial"
	DeductionFailed  = "failed"
)

const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

var paymentMethods = []string{"cash", "card", "mobile_money", "bank_transfer"}

func ValidPaymentMethod(method string) bool {
	for _, m := range paymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func ValidOrderType(orderType string) bool {
	switch orderType {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

func ValidOrderItemStatus(status string) bool {
	switch status {
	case ItemStatusPending, ItemStatusPreparing, ItemStatusReady, ItemStatusServed:
		return true
	}
	return false
}

// orderTransitions is the legal status graph. Terminal states have no
// outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady},
	OrderReady:     {OrderServed},
	OrderServed:    {OrderPaid},
	OrderPaid:      {},
	OrderCancelled: {},
}

// CanTransition reports whether moving from one order status to another
// follows the lifecycle graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderServed, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderPaid || s == OrderCancelled
}

// CalculateTotals recomputes subtotal and total from the line items.
// Tax and discount are inputs, not derived here.
func (o *Order) CalculateTotals() {
	if len(o.Items) == 0 {
		return
	}
	var subtotal float64
	for _, item := range o.Items {
		subtotal += item.TotalPrice
	}
	o.Subtotal = subtotal
	o.Total = o.Subtotal + o.Tax - o.Discount
}

// GenerateOrderNumber builds the unique order number from the date and
// the trailing digits of the millisecond timestamp.
func GenerateOrderNumber(now time.Time) string {
	ts := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("ORD%s%s", now.Format("20060102"), ts[len(ts)-6:])
}
