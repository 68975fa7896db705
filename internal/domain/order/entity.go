package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	MenuItemID uuid.UUID
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	TotalPrice decimal.Decimal
}

func NewItem(menuItemID uuid.UUID, name string, unitPrice decimal.Decimal, quantity int) Item {
	return Item{
		MenuItemID: menuItemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

type Order struct {
	id               uuid.UUID
	number           string
	userID           *uuid.UUID
	customerName     string
	customerPhone    string
	deliveryAddress  string
	items            []Item
	subtotal         decimal.Decimal
	deliveryCharges  decimal.Decimal
	discount         decimal.Decimal
	totalAmount      decimal.Decimal
	couponCode       *string
	paymentMethod    PaymentMethod
	paymentStatus    PaymentStatus
	status           Status
	deliveryPersonID *uuid.UUID
	createdAt        time.Time
	deliveredAt      *time.Time
	cancelledAt      *time.Time
}

// NewOrder assembles a pending order. The total identity
// total = subtotal + delivery_charges - discount is established here
// and nowhere else.
func NewOrder(
	number string,
	userID *uuid.UUID,
	customerName, customerPhone, deliveryAddress string,
	items []Item,
	deliveryCharges, discount decimal.Decimal,
	couponCode *string,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if deliveryCharges.IsNegative() || discount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return &Order{
		id:              uuid.New(),
		number:          number,
		userID:          userID,
		customerName:    customerName,
		customerPhone:   customerPhone,
		deliveryAddress: deliveryAddress,
		items:           items,
		subtotal:        subtotal,
		deliveryCharges: deliveryCharges,
		discount:        discount,
		totalAmount:     subtotal.Add(deliveryCharges).Sub(discount),
		couponCode:      couponCode,
		paymentMethod:   paymentMethod,
		paymentStatus:   PaymentPending,
		status:          StatusPending,
		createdAt:       createdAt,
	}, nil
}

// Reconstruct rebuilds an Order from persisted state.
func Reconstruct(
	id uuid.UUID,
	number string,
	userID *uuid.UUID,
	customerName, customerPhone, deliveryAddress string,
	items []Item,
	subtotal, deliveryCharges, discount, totalAmount decimal.Decimal,
	couponCode *string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	deliveryPersonID *uuid.UUID,
	createdAt time.Time,
	deliveredAt, cancelledAt *time.Time,
) *Order {
	return &Order{
		id:               id,
		number:           number,
		userID:           userID,
		customerName:     customerName,
		customerPhone:    customerPhone,
		deliveryAddress:  deliveryAddress,
		items:            items,
		subtotal:         subtotal,
		deliveryCharges:  deliveryCharges,
		discount:         discount,
		totalAmount:      totalAmount,
		couponCode:       couponCode,
		paymentMethod:    paymentMethod,
		paymentStatus:    paymentStatus,
		status:           status,
		deliveryPersonID: deliveryPersonID,
		createdAt:        createdAt,
		deliveredAt:      deliveredAt,
		cancelledAt:      cancelledAt,
	}
}

// CanCancel reports whether the order is still inside the customer
// cancellation window and in a cancellable state.
func (o *Order) CanCancel(now time.Time, window time.Duration) error {
	if o.status != StatusPending && o.status != StatusConfirmed {
		return ErrNotCancellable
	}
	if now.Sub(o.createdAt) > window {
		return ErrCancellationClosed
	}
	return nil
}

func (o *Order) ID() uuid.UUID                   { return o.id }
func (o *Order) Number() string                  { return o.number }
func (o *Order) UserID() *uuid.UUID              { return o.userID }
func (o *Order) CustomerName() string            { return o.customerName }
func (o *Order) CustomerPhone() string           { return o.customerPhone }
func (o *Order) DeliveryAddress() string         { return o.deliveryAddress }
func (o *Order) Items() []Item                   { return o.items }
func (o *Order) Subtotal() decimal.Decimal       { return o.subtotal }
func (o *Order) DeliveryCharges() decimal.Decimal {
	return o.deliveryCharges
}
func (o *Order) Discount() decimal.Decimal    { return o.discount }
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }
func (o *Order) CouponCode() *string          { return o.couponCode }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Status() Status               { return o.status }
func (o *Order) DeliveryPersonID() *uuid.UUID {
	return o.deliveryPersonID
}
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
