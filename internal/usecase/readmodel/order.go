package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRM struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderRM struct {
	ID               uuid.UUID       `json:"id"`
	Number           string          `json:"order_number"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	DeliveryAddress  string          `json:"delivery_address"`
	Items            []OrderItemRM   `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DeliveryCharges  decimal.Decimal `json:"delivery_charges"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CouponCode       *string         `json:"coupon_code,omitempty"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	Status           string          `json:"status"`
	Progress         int             `json:"progress"`
	DeliveryPersonID *uuid.UUID      `json:"delivery_person_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
}

type OrderListRM struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"order_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	CreatedAt   time.Time       `json:"created_at"`
}
