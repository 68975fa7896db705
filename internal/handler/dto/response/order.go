package response

import (
	"log/slog"
	"time"

	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	Number          string              `json:"order_number"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	DeliveryAddress string              `json:"delivery_address"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	DeliveryCharges decimal.Decimal     `json:"delivery_charges"`
	Discount        decimal.Decimal     `json:"discount"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	CouponCode      *string             `json:"coupon_code,omitempty"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	Status          string              `json:"status"`
	Progress        int                 `json:"progress"`
	CreatedAt       time.Time           `json:"created_at"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
}

// FromOrderRM drops the internal-only fields (user id, delivery person
// assignment) from the customer-facing view.
func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	var resp OrderResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to convert order readmodel", "error", err)
		return &OrderResponse{}
	}
	return &resp
}
