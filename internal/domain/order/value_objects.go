package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrNegativeAmount       = errors.New("order amounts cannot be negative")
	ErrCancellationClosed   = errors.New("cancellation window has closed")
	ErrNotCancellable       = errors.New("order can no longer be cancelled")
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo encodes the delivery lifecycle. Cancellation is only
// reachable from the pre-kitchen states; the time window is enforced
// separately on the entity.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusPreparing || next == StatusCancelled
	case StatusPreparing:
		return next == StatusOutForDelivery
	case StatusOutForDelivery:
		return next == StatusDelivered
	default:
		return false
	}
}

// Progress maps a status to the tracking-page percentage.
func (s Status) Progress() int {
	switch s {
	case StatusPending:
		return 10
	case StatusConfirmed:
		return 30
	case StatusPreparing:
		return 55
	case StatusOutForDelivery:
		return 80
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if m != PaymentCash && m != PaymentUPI {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// GenerateNumber builds a customer-facing order number like
// BC-20250601-4821: prefix, order date, random suffix. Uniqueness is
// backed by the DB constraint; on the rare collision the insert retries
// with a fresh suffix.
func GenerateNumber(prefix string, now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), suffix)
}
