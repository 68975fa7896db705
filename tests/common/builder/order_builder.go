//go:build unit || e2e

package builder

import (
	"time"

	domorder "biryani-club/internal/domain/order"
	reqdto "biryani-club/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderLine struct {
	MenuItemID uuid.UUID
	Name       string
	UnitPrice  string
	Quantity   int
}

type OrderBuilder struct {
	Number          string
	UserID          *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Lines           []orderLine
	DeliveryCharges string
	Discount        string
	CouponCode      *string
	PaymentMethod   domorder.PaymentMethod
	CreatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Number:          "BC-20250601-0001",
		CustomerName:    "Test Customer",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "12 MG Road, Bengaluru",
		DeliveryCharges: "0",
		Discount:        "0",
		PaymentMethod:   domorder.PaymentCash,
		CreatedAt:       time.Now(),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	items := make([]domorder.Item, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, domorder.NewItem(
			l.MenuItemID, l.Name, decimal.RequireFromString(l.UnitPrice), l.Quantity))
	}
	return domorder.NewOrder(
		o.Number,
		o.UserID,
		o.CustomerName,
		o.CustomerPhone,
		o.DeliveryAddress,
		items,
		decimal.RequireFromString(o.DeliveryCharges),
		decimal.RequireFromString(o.Discount),
		o.CouponCode,
		o.PaymentMethod,
		o.CreatedAt,
	)
}

func (o *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	lines := make([]reqdto.OrderLineRequest, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, reqdto.OrderLineRequest{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
		})
	}
	return reqdto.PlaceOrderRequest{
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		Items:           lines,
		CouponCode:      o.CouponCode,
		PaymentMethod:   o.PaymentMethod.String(),
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithItem(name, unitPrice string, quantity int) *OrderBuilder {
	o.Lines = append(o.Lines, orderLine{
		MenuItemID: uuid.New(),
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	})
	return o
}

func (o *OrderBuilder) WithMenuItem(menuItemID uuid.UUID, name, unitPrice string, quantity int) *OrderBuilder {
	o.Lines = append(o.Lines, orderLine{
		MenuItemID: menuItemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	})
	return o
}

func (o *OrderBuilder) WithUserID(userID uuid.UUID) *OrderBuilder {
	o.UserID = &userID
	return o
}

func (o *OrderBuilder) WithDeliveryCharges(amount string) *OrderBuilder {
	o.DeliveryCharges = amount
	return o
}

func (o *OrderBuilder) WithDiscount(amount string) *OrderBuilder {
	o.Discount = amount
	return o
}

func (o *OrderBuilder) WithCouponCode(code string) *OrderBuilder {
	o.CouponCode = &code
	return o
}

func (o *OrderBuilder) WithPaymentMethod(method domorder.PaymentMethod) *OrderBuilder {
	o.PaymentMethod = method
	return o
}

func (o *OrderBuilder) WithCreatedAt(createdAt time.Time) *OrderBuilder {
	o.CreatedAt = createdAt
	return o
}
