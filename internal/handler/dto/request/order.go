package request

import (
	"biryani-club/internal/usecase"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required,max=100"`
	CustomerPhone   string             `json:"customer_phone" binding:"required,max=20"`
	DeliveryAddress string             `json:"delivery_address" binding:"required,max=500"`
	PaymentMethod   string             `json:"payment_method" binding:"required,oneof=cash upi"`
	CouponCode      *string            `json:"coupon_code,omitempty"`
	Items           []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *PlaceOrderRequest) ToParams(userID *uuid.UUID) usecase.PlaceOrderParams {
	return usecase.PlaceOrderParams{
		UserID:          userID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		DeliveryAddress: r.DeliveryAddress,
		PaymentMethod:   r.PaymentMethod,
		CouponCode:      r.CouponCode,
		Items:           toLineInputs(r.Items),
	}
}

type ValidateCouponRequest struct {
	Code  string             `json:"code" binding:"required"`
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *ValidateCouponRequest) ToLineInputs() []usecase.OrderLineInput {
	return toLineInputs(r.Items)
}

func toLineInputs(items []OrderLineRequest) []usecase.OrderLineInput {
	inputs := make([]usecase.OrderLineInput, len(items))
	for i, it := range items {
		inputs[i] = usecase.OrderLineInput{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
		}
	}
	return inputs
}
